package domain

import (
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&Domain{}, &DataArea{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func TestAddDomains_ThenSortedFetch(t *testing.T) {
	svc := &DomainService{DB: newTestDB(t)}

	if err := svc.AddDomains([]string{"sales", "finance", "hr"}); err != nil {
		t.Fatalf("add domains: %v", err)
	}

	domains, err := svc.GetAllDomains()
	if err != nil {
		t.Fatalf("get domains: %v", err)
	}
	if len(domains) != 3 {
		t.Fatalf("expected 3 domains, got %d", len(domains))
	}
	if domains[0].Name != "finance" || domains[1].Name != "hr" || domains[2].Name != "sales" {
		t.Fatalf("unexpected order: %#v", domains)
	}
}

func TestAddDataAreas_WithAndWithoutDomain(t *testing.T) {
	svc := &DomainService{DB: newTestDB(t)}

	if err := svc.AddDomains([]string{"sales"}); err != nil {
		t.Fatalf("add domain: %v", err)
	}
	domains, err := svc.GetAllDomains()
	if err != nil {
		t.Fatalf("get domains: %v", err)
	}
	domainID := domains[0].ID

	if err := svc.AddDataAreas([]string{"orders", "invoices"}, &domainID); err != nil {
		t.Fatalf("add data areas: %v", err)
	}
	if err := svc.AddDataAreas([]string{"shared"}, nil); err != nil {
		t.Fatalf("add unscoped data area: %v", err)
	}

	all, err := svc.GetAllDataAreas()
	if err != nil {
		t.Fatalf("get all data areas: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 data areas, got %d", len(all))
	}

	scoped, err := svc.GetDataAreasByDomain(domainID)
	if err != nil {
		t.Fatalf("get by domain: %v", err)
	}
	if len(scoped) != 2 {
		t.Fatalf("expected 2 scoped areas, got %d", len(scoped))
	}
	if scoped[0].Name != "invoices" || scoped[1].Name != "orders" {
		t.Fatalf("unexpected order: %#v", scoped)
	}
	for _, area := range scoped {
		if area.DomainID == nil || *area.DomainID != domainID {
			t.Fatalf("area not bound to domain: %#v", area)
		}
	}
}

func TestGetDataAreasByDomain_Empty(t *testing.T) {
	svc := &DomainService{DB: newTestDB(t)}

	areas, err := svc.GetDataAreasByDomain(99)
	if err != nil {
		t.Fatalf("get by domain: %v", err)
	}
	if len(areas) != 0 {
		t.Fatalf("expected no areas, got %#v", areas)
	}
}
