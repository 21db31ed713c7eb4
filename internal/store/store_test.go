package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/trucost-app/trucost/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "trucost.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func seedUser(t *testing.T, s *Store) model.User {
	t.Helper()
	u := model.User{
		ID:          "user-1",
		Email:       "alex@example.com",
		Name:        "Alex",
		DefaultWage: 25,
		WageType:    model.WageHourly,
		Currency:    "USD",
		CreatedAt:   time.Now(),
	}
	if err := s.SaveUser(u); err != nil {
		t.Fatalf("save user: %v", err)
	}
	return u
}

func TestUserRoundTrip(t *testing.T) {
	s := openTestStore(t)

	got, err := s.CurrentUser()
	if err != nil {
		t.Fatalf("current user: %v", err)
	}
	if got != nil {
		t.Fatalf("empty store returned user %+v", got)
	}

	u := seedUser(t, s)
	got, err = s.CurrentUser()
	if err != nil {
		t.Fatalf("current user: %v", err)
	}
	if got == nil || got.ID != u.ID || got.WageType != model.WageHourly || got.DefaultWage != 25 {
		t.Errorf("CurrentUser = %+v, want saved profile", got)
	}

	if err := s.DeleteAllUsers(); err != nil {
		t.Fatalf("delete users: %v", err)
	}
	got, err = s.CurrentUser()
	if err != nil {
		t.Fatalf("current user after logout: %v", err)
	}
	if got != nil {
		t.Errorf("user survived logout: %+v", got)
	}
}

func TestDeleteCategory_DefaultRefused(t *testing.T) {
	s := openTestStore(t)
	u := seedUser(t, s)

	def := model.Category{ID: "cat-def", UserID: u.ID, Name: "Food", IsDefault: true, CreatedAt: time.Now()}
	custom := model.Category{ID: "cat-custom", UserID: u.ID, Name: "Vinyl", CreatedAt: time.Now()}
	for _, c := range []model.Category{def, custom} {
		if err := s.SaveCategory(c); err != nil {
			t.Fatalf("save category: %v", err)
		}
	}

	if err := s.DeleteCategory(def.ID); err != ErrDefaultCategory {
		t.Errorf("deleting default category: err = %v, want ErrDefaultCategory", err)
	}
	if err := s.DeleteCategory(custom.ID); err != nil {
		t.Errorf("deleting custom category: %v", err)
	}

	cats, err := s.ListCategories(u.ID)
	if err != nil {
		t.Fatalf("list categories: %v", err)
	}
	if len(cats) != 1 || cats[0].ID != def.ID {
		t.Errorf("categories after delete = %+v, want only the default", cats)
	}
}

func TestSaveCategory_EmptyNameRefused(t *testing.T) {
	s := openTestStore(t)
	u := seedUser(t, s)

	for _, name := range []string{"", "   ", "\t"} {
		c := model.Category{ID: "cat-empty", UserID: u.ID, Name: name, CreatedAt: time.Now()}
		if err := s.SaveCategory(c); err != ErrEmptyName {
			t.Errorf("SaveCategory(%q) = %v, want ErrEmptyName", name, err)
		}
	}

	cats, err := s.ListCategories(u.ID)
	if err != nil {
		t.Fatalf("list categories: %v", err)
	}
	if len(cats) != 0 {
		t.Errorf("empty-named category persisted: %+v", cats)
	}
}

func TestSaveCategory_TrimsName(t *testing.T) {
	s := openTestStore(t)
	u := seedUser(t, s)

	c := model.Category{ID: "cat-1", UserID: u.ID, Name: "  Vinyl  ", CreatedAt: time.Now()}
	if err := s.SaveCategory(c); err != nil {
		t.Fatalf("save category: %v", err)
	}

	got, err := s.CategoryByName(u.ID, "Vinyl")
	if err != nil {
		t.Fatalf("category by name: %v", err)
	}
	if got == nil || got.Name != "Vinyl" {
		t.Errorf("CategoryByName(Vinyl) = %+v, want trimmed name", got)
	}
}

func TestGoalUpsert(t *testing.T) {
	s := openTestStore(t)
	u := seedUser(t, s)

	g, err := s.GoalForUser(u.ID)
	if err != nil {
		t.Fatalf("goal for user: %v", err)
	}
	if g != nil {
		t.Fatalf("empty store returned goal %+v", g)
	}

	goal := model.Goal{
		ID: "goal-1", UserID: u.ID, Name: "Vacation",
		TargetAmount: 5000, StartingAmount: 500, WeeklySavings: 100,
		CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}
	if err := s.SaveGoal(goal); err != nil {
		t.Fatalf("save goal: %v", err)
	}

	goal.StartingAmount = 1200
	if err := s.SaveGoal(goal); err != nil {
		t.Fatalf("resave goal: %v", err)
	}

	g, err = s.GoalForUser(u.ID)
	if err != nil {
		t.Fatalf("goal for user: %v", err)
	}
	if g == nil || g.StartingAmount != 1200 {
		t.Errorf("GoalForUser = %+v, want updated amounts", g)
	}
}

func TestListDecisions_Filters(t *testing.T) {
	s := openTestStore(t)
	u := seedUser(t, s)

	now := time.Now()
	old := model.Decision{ID: "d-old", UserID: u.ID, Name: "Old", Cost: 10, CategoryID: "cat-a", CreatedAt: now.AddDate(0, 0, -40)}
	recent := model.Decision{ID: "d-new", UserID: u.ID, Name: "New", Cost: 20, CategoryID: "cat-b", ComputedGoalDelayDays: 3, CreatedAt: now}
	for _, d := range []model.Decision{old, recent} {
		if err := s.SaveDecision(d); err != nil {
			t.Fatalf("save decision: %v", err)
		}
	}

	all, err := s.ListDecisions(u.ID, DecisionFilter{})
	if err != nil {
		t.Fatalf("list decisions: %v", err)
	}
	if len(all) != 2 || all[0].ID != "d-new" {
		t.Errorf("ListDecisions = %+v, want newest first", all)
	}

	byCat, err := s.ListDecisions(u.ID, DecisionFilter{CategoryID: "cat-a"})
	if err != nil {
		t.Fatalf("list by category: %v", err)
	}
	if len(byCat) != 1 || byCat[0].ID != "d-old" {
		t.Errorf("category filter = %+v, want only d-old", byCat)
	}

	since, err := s.ListDecisions(u.ID, DecisionFilter{Since: now.AddDate(0, 0, -7)})
	if err != nil {
		t.Fatalf("list since: %v", err)
	}
	if len(since) != 1 || since[0].ID != "d-new" {
		t.Errorf("since filter = %+v, want only d-new", since)
	}

	top, err := s.TopDelays(u.ID, 3)
	if err != nil {
		t.Fatalf("top delays: %v", err)
	}
	if len(top) != 1 || top[0].ID != "d-new" {
		t.Errorf("TopDelays = %+v, want only the delaying decision", top)
	}
}

func TestMarkPurchased_Transactional(t *testing.T) {
	s := openTestStore(t)
	u := seedUser(t, s)

	item := model.WishlistItem{
		ID: "item-1", UserID: u.ID, Name: "Espresso Machine", Cost: 500,
		Status: model.StatusWishlisted, CreatedAt: time.Now(),
	}
	if err := s.SaveWishlistItem(item); err != nil {
		t.Fatalf("save item: %v", err)
	}

	now := time.Now()
	d := model.Decision{ID: "dec-1", UserID: u.ID, Name: "Wishlist: Espresso Machine", Cost: 500, CreatedAt: now}
	if err := s.MarkPurchased(item.ID, d, now); err != nil {
		t.Fatalf("mark purchased: %v", err)
	}

	got, err := s.GetWishlistItem(item.ID)
	if err != nil {
		t.Fatalf("get item: %v", err)
	}
	if got.Status != model.StatusPurchased {
		t.Errorf("Status = %s, want purchased", got.Status)
	}
	if got.PurchasedAt.IsZero() {
		t.Error("PurchasedAt not stamped")
	}

	ledger, err := s.ListDecisions(u.ID, DecisionFilter{})
	if err != nil {
		t.Fatalf("list decisions: %v", err)
	}
	if len(ledger) != 1 || ledger[0].ID != "dec-1" {
		t.Errorf("ledger = %+v, want the purchase decision", ledger)
	}

	// Terminal state: buying again must fail and not duplicate the decision.
	if err := s.MarkPurchased(item.ID, d, now); err == nil {
		t.Error("second MarkPurchased succeeded, want transition refusal")
	}
}

func TestArchiveItem(t *testing.T) {
	s := openTestStore(t)
	u := seedUser(t, s)

	item := model.WishlistItem{
		ID: "item-1", UserID: u.ID, Name: "Drone", Cost: 300,
		Status: model.StatusWishlisted, CreatedAt: time.Now(),
	}
	if err := s.SaveWishlistItem(item); err != nil {
		t.Fatalf("save item: %v", err)
	}

	if err := s.ArchiveItem(item.ID); err != nil {
		t.Fatalf("archive: %v", err)
	}

	wishlisted, err := s.ListWishlist(u.ID, model.StatusWishlisted)
	if err != nil {
		t.Fatalf("list wishlisted: %v", err)
	}
	if len(wishlisted) != 0 {
		t.Errorf("wishlisted = %+v, want empty after archive", wishlisted)
	}

	if err := s.ArchiveItem(item.ID); err == nil {
		t.Error("archiving archived item succeeded, want refusal")
	}
}
