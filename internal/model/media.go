// Copyright (c) 2026 Pronim.al
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Supported image MIME types.
const (
	MimeTypeJPEG = "image/jpeg"
	MimeTypePNG  = "image/png"
	MimeTypeGIF  = "image/gif"
	MimeTypeWebP = "image/webp"
)

// IsSupportedMimeType reports whether the MIME type can be uploaded.
func IsSupportedMimeType(mimeType string) bool {
	switch mimeType {
	case MimeTypeJPEG, MimeTypePNG, MimeTypeGIF, MimeTypeWebP:
		return true
	default:
		return false
	}
}

// ImageVariantConfig describes how a resized variant is produced.
type ImageVariantConfig struct {
	Width   int
	Height  int
	Quality int
	// Crop fills the exact dimensions from the center instead of fitting
	// within them.
	Crop bool
}

// Variant type names used as upload subdirectories.
const (
	VariantThumbnail = "thumbnail"
	VariantMedium    = "medium"
	VariantLarge     = "large"
)

// ImageVariants defines the standard variants generated for each upload.
var ImageVariants = map[string]ImageVariantConfig{
	VariantThumbnail: {Width: 300, Height: 300, Quality: 80, Crop: true},
	VariantMedium:    {Width: 800, Height: 800, Quality: 85},
	VariantLarge:     {Width: 1600, Height: 1600, Quality: 90},
}
