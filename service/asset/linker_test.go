package asset

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"stockbook/core/fault"
	entity "stockbook/model/entity"
)

func writeSource(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}
	return path
}

func TestLinkImage_EmptySourceIsNoPath(t *testing.T) {
	l := NewLinker(filepath.Join(t.TempDir(), "product_images"))
	rel, err := l.LinkImage("", "SKU-1")
	if err != nil {
		t.Fatalf("LinkImage(\"\"): %v", err)
	}
	if rel != "" {
		t.Errorf("relative path = %q, want empty", rel)
	}
	if _, err := os.Stat(l.Dir); !os.IsNotExist(err) {
		t.Error("asset directory created for an empty source")
	}
}

func TestLinkImage_MissingSource(t *testing.T) {
	l := NewLinker(filepath.Join(t.TempDir(), "product_images"))
	rel, err := l.LinkImage("/no/such/file.png", "SKU-1")
	var assetErr *fault.AssetError
	if !errors.As(err, &assetErr) {
		t.Fatalf("error = %v, want AssetError", err)
	}
	if rel != "" {
		t.Errorf("relative path = %q, want empty", rel)
	}
	entries, _ := os.ReadDir(l.Dir)
	if len(entries) != 0 {
		t.Errorf("partial files left behind: %v", entries)
	}
}

func TestLinkImage_CopiesBytes(t *testing.T) {
	data := []byte("not really a png but the copy must be verbatim")
	src := writeSource(t, "photo.PNG", data)

	dir := filepath.Join(t.TempDir(), "product_images")
	l := NewLinker(dir)
	rel, err := l.LinkImage(src, "SKU-1")
	if err != nil {
		t.Fatalf("LinkImage: %v", err)
	}

	// Extension is lower-cased.
	want := filepath.ToSlash(filepath.Join(dir, "SKU-1.png"))
	if rel != want {
		t.Errorf("relative path = %q, want %q", rel, want)
	}
	got, err := os.ReadFile(filepath.Join(dir, "SKU-1.png"))
	if err != nil {
		t.Fatalf("read copy: %v", err)
	}
	if !reflect.DeepEqual(got, data) {
		t.Error("copied bytes differ from source")
	}
}

func TestLinkImage_LastWriteWins(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "product_images")
	l := NewLinker(dir)

	first := writeSource(t, "a.png", []byte("first upload"))
	if _, err := l.LinkImage(first, "SKU-1"); err != nil {
		t.Fatalf("first link: %v", err)
	}
	second := writeSource(t, "b.png", []byte("second upload"))
	if _, err := l.LinkImage(second, "SKU-1"); err != nil {
		t.Fatalf("second link: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(dir, "SKU-1.png"))
	if err != nil {
		t.Fatalf("read copy: %v", err)
	}
	if string(got) != "second upload" {
		t.Errorf("copy holds %q, want the second upload", got)
	}
}

func orphanDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&entity.ProductMaster{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestFindOrphans(t *testing.T) {
	db := orphanDB(t)
	p := entity.ProductMaster{
		Barcode: "890123", SkuID: "SKU-KEPT", Category: "c", Subcategory: "s",
		ProductName: "Kept", Tax: decimal.Zero, Price: decimal.NewFromInt(1),
		DefaultUnit: entity.UnitPcs,
	}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}

	dir := filepath.Join(t.TempDir(), "product_images")
	l := NewLinker(dir)
	kept := writeSource(t, "kept.png", []byte("kept"))
	gone := writeSource(t, "gone.png", []byte("gone"))
	if _, err := l.LinkImage(kept, "SKU-KEPT"); err != nil {
		t.Fatalf("link kept: %v", err)
	}
	if _, err := l.LinkImage(gone, "SKU-GONE"); err != nil {
		t.Fatalf("link gone: %v", err)
	}

	orphans, err := l.FindOrphans(db)
	if err != nil {
		t.Fatalf("FindOrphans: %v", err)
	}
	want := []string{filepath.ToSlash(filepath.Join(dir, "SKU-GONE.png"))}
	if !reflect.DeepEqual(orphans, want) {
		t.Errorf("FindOrphans() = %v, want %v", orphans, want)
	}
}

func TestFindOrphans_NoDirectory(t *testing.T) {
	db := orphanDB(t)
	l := NewLinker(filepath.Join(t.TempDir(), "never_created"))
	orphans, err := l.FindOrphans(db)
	if err != nil {
		t.Fatalf("FindOrphans: %v", err)
	}
	if len(orphans) != 0 {
		t.Errorf("FindOrphans() = %v, want none", orphans)
	}
}
