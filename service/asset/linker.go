// Package asset manages product image copies. Each upload is copied
// byte-for-byte into the managed directory as <sku><ext> (extension
// lower-cased), last write wins. A 120px JPEG preview is rendered next to it
// on a best-effort basis; preview failures never fail the link.
package asset

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/chai2010/webp" // register webp decoding for previews
	"github.com/disintegration/imaging"

	"stockbook/core/fault"
)

// thumbSize matches the preview box the product form renders.
const thumbSize = 120

type Linker struct {
	Dir string
}

func NewLinker(dir string) *Linker {
	return &Linker{Dir: dir}
}

// LinkImage copies the file at sourcePath into the asset directory under the
// owning product's SKU and returns the relative path to record on the catalog
// row. An empty sourcePath means no image and returns ("", nil). Copy
// failures return ("", *fault.AssetError); the caller may still save the
// product without an image. No partial destination file survives any error.
func (l *Linker) LinkImage(sourcePath, skuID string) (string, error) {
	if strings.TrimSpace(sourcePath) == "" {
		return "", nil
	}

	src, err := os.Open(sourcePath)
	if err != nil {
		return "", &fault.AssetError{Path: sourcePath, Err: err}
	}
	defer src.Close()

	if err := os.MkdirAll(l.Dir, 0o755); err != nil {
		return "", &fault.AssetError{Path: l.Dir, Err: err}
	}

	ext := strings.ToLower(filepath.Ext(sourcePath))
	destPath := filepath.Join(l.Dir, skuID+ext)
	dest, err := os.Create(destPath)
	if err != nil {
		return "", &fault.AssetError{Path: destPath, Err: err}
	}
	if _, err := io.Copy(dest, src); err != nil {
		dest.Close()
		os.Remove(destPath)
		return "", &fault.AssetError{Path: destPath, Err: err}
	}
	if err := dest.Close(); err != nil {
		os.Remove(destPath)
		return "", &fault.AssetError{Path: destPath, Err: err}
	}

	l.writeThumbnail(sourcePath, skuID)

	return filepath.ToSlash(destPath), nil
}

func (l *Linker) writeThumbnail(sourcePath, skuID string) {
	img, err := imaging.Open(sourcePath)
	if err != nil {
		log.Printf("asset: no preview for %s: %v", skuID, err)
		return
	}
	thumb := imaging.Fit(img, thumbSize, thumbSize, imaging.Lanczos)
	if err := imaging.Save(thumb, filepath.Join(l.Dir, skuID+"_thumb.jpg")); err != nil {
		log.Printf("asset: preview save failed for %s: %v", skuID, err)
	}
}
