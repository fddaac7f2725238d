package asset

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gorm.io/gorm"

	"stockbook/core/fault"
	entity "stockbook/model/entity"
)

// FindOrphans lists asset files whose SKU no longer matches any catalog row.
// An image copied before a failed catalog insert stays on disk; this is the
// accepted cleanup report for those. Previews are skipped, and nothing is
// deleted here.
func (l *Linker) FindOrphans(db *gorm.DB) ([]string, error) {
	entries, err := os.ReadDir(l.Dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, &fault.AssetError{Path: l.Dir, Err: err}
	}

	var orphans []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		stem := strings.TrimSuffix(name, filepath.Ext(name))
		if strings.HasSuffix(stem, "_thumb") {
			continue
		}
		var count int64
		err := db.Model(&entity.ProductMaster{}).Where("sku_id = ?", stem).Count(&count).Error
		if err != nil {
			return nil, fault.Storage("orphan scan", err)
		}
		if count == 0 {
			orphans = append(orphans, filepath.ToSlash(filepath.Join(l.Dir, name)))
		}
	}
	sort.Strings(orphans)
	return orphans, nil
}
