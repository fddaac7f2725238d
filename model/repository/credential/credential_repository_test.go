package credential

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	entity "stockbook/model/entity"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	return db
}

func initRepo(t *testing.T) *CredentialRepository {
	t.Helper()
	repo := NewCredentialRepository(testDB(t))
	if err := repo.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	return repo
}

func TestInit_SeedsDefaultOperators(t *testing.T) {
	repo := initRepo(t)

	var count int64
	if err := repo.db.Model(&entity.Operator{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("seeded %d operators, want 2", count)
	}

	for _, name := range DefaultOperators {
		ok, err := repo.Authenticate(name, DefaultPassword)
		if err != nil {
			t.Fatalf("Authenticate(%s): %v", name, err)
		}
		if !ok {
			t.Errorf("default operator %s cannot log in", name)
		}
	}
}

func TestInit_Idempotent(t *testing.T) {
	repo := initRepo(t)
	if err := repo.Init(); err != nil {
		t.Fatalf("second Init: %v", err)
	}
	var count int64
	if err := repo.db.Model(&entity.Operator{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("operator count after repeated Init = %d, want 2", count)
	}
}

func TestInit_DoesNotReseedExistingAccounts(t *testing.T) {
	db := testDB(t)
	if err := db.AutoMigrate(&entity.Operator{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	op := entity.Operator{Username: "admin"}
	if err := op.SetPassword("secret"); err != nil {
		t.Fatalf("SetPassword: %v", err)
	}
	if err := db.Create(&op).Error; err != nil {
		t.Fatalf("create: %v", err)
	}

	repo := NewCredentialRepository(db)
	if err := repo.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	var count int64
	db.Model(&entity.Operator{}).Count(&count)
	if count != 1 {
		t.Errorf("operator count = %d, want 1 (no defaults on a non-empty table)", count)
	}
}

func TestAuthenticate(t *testing.T) {
	repo := initRepo(t)

	cases := []struct {
		name     string
		username string
		password string
		want     bool
	}{
		{"valid", "operator1", "password123", true},
		{"wrong password", "operator1", "wrong", false},
		{"unknown user empty password", "nobody", "", false},
		{"case-sensitive username", "Operator1", "password123", false},
		{"empty username", "", "password123", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ok, err := repo.Authenticate(c.username, c.password)
			if err != nil {
				t.Fatalf("Authenticate(%q, %q): %v", c.username, c.password, err)
			}
			if ok != c.want {
				t.Errorf("Authenticate(%q, %q) = %v, want %v", c.username, c.password, ok, c.want)
			}
		})
	}
}

func TestAuthenticate_StoreFailureIsNotALogin(t *testing.T) {
	db := testDB(t)
	// No Init: the users table does not exist, so the query must fail.
	repo := NewCredentialRepository(db)
	ok, err := repo.Authenticate("operator1", "password123")
	if ok {
		t.Error("a failing store authenticated an operator")
	}
	if err == nil {
		t.Error("expected a storage error from a missing table")
	}
}
