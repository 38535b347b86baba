package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "rentora-backend/internal/domain/rental"
	"rentora-backend/pkg/id"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// sqlite-safe shadows of the production schema: text instead of enum columns,
// same table names so the repositories run unchanged.

type rentalSQLite struct {
	ID                uint64         `gorm:"primaryKey;column:id"`
	RentalID          string         `gorm:"size:32;column:rental_id"`
	ClientID          uint64         `gorm:"column:client_id"`
	PropertyID        uint64         `gorm:"column:property_id"`
	MonthlyRent       float64        `gorm:"column:monthly_rent"`
	SecurityDeposit   *float64       `gorm:"column:security_deposit"`
	StartDate         time.Time      `gorm:"column:start_date"`
	EndDate           *time.Time     `gorm:"column:end_date"`
	Status            string         `gorm:"type:text;column:status"` // ← no enum
	Remarks           string         `gorm:"column:remarks"`
	Notes             string         `gorm:"column:notes"`
	ContractSignedAt  *time.Time     `gorm:"column:contract_signed_at"`
	ActivePropertyRef *uint64        `gorm:"column:active_property_ref;uniqueIndex:ux_rentals_active_property"`
	StatusUpdatedAt   time.Time      `gorm:"column:status_updated_at"`
	CreatedAt         time.Time      `gorm:"column:created_at"`
	UpdatedAt         time.Time      `gorm:"column:updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"column:deleted_at"`
	DeletedBy         string         `gorm:"column:deleted_by"`
}

func (rentalSQLite) TableName() string { return "rentals" }

type propertySQLite struct {
	ID               uint64         `gorm:"primaryKey;column:id"`
	PropertyID       string         `gorm:"size:32;column:property_id"`
	Name             string         `gorm:"column:name"`
	Address          string         `gorm:"column:address"`
	Status           string         `gorm:"type:text;column:status"`
	EstimatedMonthly float64        `gorm:"column:estimated_monthly"`
	CreatedAt        time.Time      `gorm:"column:created_at"`
	UpdatedAt        time.Time      `gorm:"column:updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (propertySQLite) TableName() string { return "properties" }

type clientSQLite struct {
	ID        uint64         `gorm:"primaryKey;column:id"`
	ClientID  string         `gorm:"size:32;column:client_id"`
	Name      string         `gorm:"column:name"`
	Email     string         `gorm:"column:email"`
	Phone     string         `gorm:"column:phone"`
	CreatedAt time.Time      `gorm:"column:created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (clientSQLite) TableName() string { return "clients" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the sqlite-safe schema.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// IMPORTANT: migrate the sqlite-safe models, NOT the domain models.
	if err := db.AutoMigrate(&rentalSQLite{}, &propertySQLite{}, &clientSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func makeRental(rentalID string, clientID, propertyID uint64) *domain.Rental {
	return &domain.Rental{
		RentalID:        rentalID,
		ClientID:        clientID,
		PropertyID:      propertyID,
		MonthlyRent:     25_000.00,
		StartDate:       time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Status:          domain.StatusActive,
		StatusUpdatedAt: time.Now().UTC(),
	}
}

func TestCreateAndGetByRentalID(t *testing.T) {
	db := openTestDB(t)
	repo := NewRentalRepository(db)
	ctx := context.Background()

	rentalID := id.NewID32()

	r := makeRental(rentalID, 1, 1)
	r.SyncActiveRef()
	if err := repo.Create(ctx, r); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if r.ID == 0 {
		t.Fatalf("auto ID not set")
	}

	got, err := repo.GetByRentalID(ctx, rentalID)
	if err != nil {
		t.Fatalf("GetByRentalID: %v", err)
	}
	if got.RentalID != rentalID || got.Status != domain.StatusActive {
		t.Fatalf("unexpected rental: %+v", got)
	}

	if _, err := repo.GetByRentalID(ctx, "nope"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestGetByRentalIDForUpdate(t *testing.T) {
	db := openTestDB(t)
	repo := NewRentalRepository(db)
	ctx := context.Background()

	r := makeRental(id.NewID32(), 1, 1)
	if err := repo.Create(ctx, r); err != nil {
		t.Fatalf("Create: %v", err)
	}
	got, err := repo.GetByRentalIDForUpdate(ctx, r.RentalID)
	if err != nil {
		t.Fatalf("GetByRentalIDForUpdate: %v", err)
	}
	if got.ID != r.ID {
		t.Fatalf("wrong row: %+v", got)
	}
}

func TestSaveUpdatesRow(t *testing.T) {
	db := openTestDB(t)
	repo := NewRentalRepository(db)
	ctx := context.Background()

	r := makeRental(id.NewID32(), 1, 1)
	if err := repo.Create(ctx, r); err != nil {
		t.Fatalf("Create: %v", err)
	}

	r.Status = domain.StatusTerminated
	r.Notes = "Terminated: tenant moved out"
	r.SyncActiveRef()
	if err := repo.Save(ctx, r); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.GetByRentalID(ctx, r.RentalID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Status != domain.StatusTerminated || got.Notes != r.Notes {
		t.Fatalf("update not persisted: %+v", got)
	}
	if got.ActivePropertyRef != nil {
		t.Fatalf("active ref must be NULL after terminate")
	}
}

func TestCountActiveByPropertyID(t *testing.T) {
	db := openTestDB(t)
	repo := NewRentalRepository(db)
	ctx := context.Background()

	active := makeRental(id.NewID32(), 1, 7)
	if err := repo.Create(ctx, active); err != nil {
		t.Fatal(err)
	}
	ended := makeRental(id.NewID32(), 2, 7)
	ended.Status = domain.StatusEnded
	if err := repo.Create(ctx, ended); err != nil {
		t.Fatal(err)
	}
	other := makeRental(id.NewID32(), 3, 8)
	if err := repo.Create(ctx, other); err != nil {
		t.Fatal(err)
	}

	n, err := repo.CountActiveByPropertyID(ctx, 7, 0)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Fatalf("count = %d, want 1", n)
	}

	// Excluding the active row itself yields zero.
	n, err = repo.CountActiveByPropertyID(ctx, 7, active.ID)
	if err != nil {
		t.Fatalf("count excl: %v", err)
	}
	if n != 0 {
		t.Fatalf("count excl = %d, want 0", n)
	}
}

func TestUniqueActivePropertyRef(t *testing.T) {
	db := openTestDB(t)
	repo := NewRentalRepository(db)
	ctx := context.Background()

	first := makeRental(id.NewID32(), 1, 9)
	first.SyncActiveRef()
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("first active: %v", err)
	}

	// Second active rental on the same property violates the unique index.
	second := makeRental(id.NewID32(), 2, 9)
	second.SyncActiveRef()
	if err := repo.Create(ctx, second); err == nil {
		t.Fatalf("expected unique violation for second active rental")
	}

	// A non-active rental carries NULL and is allowed.
	pending := makeRental(id.NewID32(), 3, 9)
	pending.Status = domain.StatusPending
	pending.SyncActiveRef()
	if err := repo.Create(ctx, pending); err != nil {
		t.Fatalf("pending rental must not collide: %v", err)
	}
}

func TestListByPropertyID_NewestFirst(t *testing.T) {
	db := openTestDB(t)
	repo := NewRentalRepository(db)
	ctx := context.Background()

	older := makeRental(id.NewID32(), 1, 5)
	older.Status = domain.StatusEnded
	older.CreatedAt = time.Now().UTC().Add(-2 * time.Hour)
	if err := repo.Create(ctx, older); err != nil {
		t.Fatal(err)
	}
	newer := makeRental(id.NewID32(), 2, 5)
	newer.CreatedAt = time.Now().UTC()
	if err := repo.Create(ctx, newer); err != nil {
		t.Fatal(err)
	}

	out, err := repo.ListByPropertyID(ctx, 5)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("len = %d, want 2", len(out))
	}
	if out[0].RentalID != newer.RentalID {
		t.Fatalf("expected newest first, got %s", out[0].RentalID)
	}
}

func TestListByStatus(t *testing.T) {
	db := openTestDB(t)
	repo := NewRentalRepository(db)
	ctx := context.Background()

	active := makeRental(id.NewID32(), 1, 1)
	if err := repo.Create(ctx, active); err != nil {
		t.Fatal(err)
	}
	ended := makeRental(id.NewID32(), 2, 2)
	ended.Status = domain.StatusEnded
	if err := repo.Create(ctx, ended); err != nil {
		t.Fatal(err)
	}

	out, err := repo.ListByStatus(ctx, domain.StatusEnded)
	if err != nil {
		t.Fatalf("list ended: %v", err)
	}
	if len(out) != 1 || out[0].RentalID != ended.RentalID {
		t.Fatalf("ended filter: %+v", out)
	}

	// empty status lists everything
	all, err := repo.ListByStatus(ctx, "")
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("len = %d, want 2", len(all))
	}
}

func TestDeleteIsSoft(t *testing.T) {
	db := openTestDB(t)
	repo := NewRentalRepository(db)
	ctx := context.Background()

	r := makeRental(id.NewID32(), 1, 1)
	if err := repo.Create(ctx, r); err != nil {
		t.Fatal(err)
	}
	if err := repo.Delete(ctx, r); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := repo.GetByRentalID(ctx, r.RentalID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("deleted rental still visible: %v", err)
	}

	// Row survives under the soft-delete marker.
	var n int64
	if err := db.Unscoped().Model(&rentalSQLite{}).Where("rental_id = ?", r.RentalID).Count(&n).Error; err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("soft-deleted row missing, count=%d", n)
	}
}
