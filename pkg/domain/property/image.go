package property

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Image is a photo attached to exactly one property. Images are created only
// through Property.AddImage.
type Image struct {
	ID         uuid.UUID
	PropertyID uuid.UUID
	FileName   string
	Enabled    bool
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}

func newImage(propertyID uuid.UUID, fileName string, enabled bool) (*Image, error) {
	if propertyID == uuid.Nil {
		return nil, ErrPropertyIDEmpty
	}
	if strings.TrimSpace(fileName) == "" {
		return nil, ErrFileNameEmpty
	}
	return &Image{
		ID:         uuid.New(),
		PropertyID: propertyID,
		FileName:   fileName,
		Enabled:    enabled,
		CreatedAt:  time.Now().UTC(),
	}, nil
}

// Enable marks the image as visible. Enabling an enabled image is a no-op.
func (i *Image) Enable() {
	if !i.Enabled {
		i.Enabled = true
		i.touch()
	}
}

// Disable hides the image. Disabling a disabled image is a no-op.
func (i *Image) Disable() {
	if i.Enabled {
		i.Enabled = false
		i.touch()
	}
}

// UpdateFileName replaces the stored file name.
func (i *Image) UpdateFileName(newFileName string) error {
	if strings.TrimSpace(newFileName) == "" {
		return ErrFileNameEmpty
	}
	i.FileName = newFileName
	i.touch()
	return nil
}

// FileExtension returns the file name's extension, including the dot.
func (i *Image) FileExtension() string {
	return filepath.Ext(i.FileName)
}

// IsImageFile reports whether the extension is a known raster image format.
func (i *Image) IsImageFile() bool {
	switch strings.ToLower(i.FileExtension()) {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp", ".bmp":
		return true
	default:
		return false
	}
}

func (i *Image) touch() {
	now := time.Now().UTC()
	i.UpdatedAt = &now
}

// HydrateImage rebuilds an Image from persisted state. Repository use only.
func HydrateImage(
	id, propertyID uuid.UUID,
	fileName string,
	enabled bool,
	createdAt time.Time,
	updatedAt *time.Time,
) *Image {
	return &Image{
		ID:         id,
		PropertyID: propertyID,
		FileName:   fileName,
		Enabled:    enabled,
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}
}
