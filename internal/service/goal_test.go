package service

import (
	"errors"
	"testing"
	"time"
)

func TestGoalCreateRequiresTitle(t *testing.T) {
	auth, goals, _ := newTrackerServices(t)

	alice, err := auth.Register("alice", "alice@x.com", "pw123")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	_, err = goals.Create(alice.ID, "", "some description")
	if !errors.Is(err, ErrTitleRequired) {
		t.Errorf("Create error = %v, want ErrTitleRequired", err)
	}

	list, err := goals.Goals(alice.ID)
	if err != nil {
		t.Fatalf("Goals failed: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("goals after failed create = %d, want 0", len(list))
	}
}

func TestRecordProgressStampsUserAndTime(t *testing.T) {
	auth, goals, _ := newTrackerServices(t)

	alice, err := auth.Register("alice", "alice@x.com", "pw123")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	goal, err := goals.Create(alice.ID, "Learn Go", "")
	if err != nil {
		t.Fatalf("Create goal failed: %v", err)
	}

	before := time.Now()
	entry, err := goals.RecordProgress(alice.ID, goal.ID, "finished the tour")
	if err != nil {
		t.Fatalf("RecordProgress failed: %v", err)
	}

	if entry.UserID != alice.ID {
		t.Errorf("entry user = %q, want %q", entry.UserID, alice.ID)
	}
	if entry.CreatedAt.Before(before.Add(-time.Second)) || entry.CreatedAt.After(time.Now().Add(time.Second)) {
		t.Errorf("entry timestamp %v not near now", entry.CreatedAt)
	}
}

func TestRecordProgressKeepsSessionUserAcrossOwners(t *testing.T) {
	auth, goals, _ := newTrackerServices(t)

	alice, err := auth.Register("alice", "alice@x.com", "pw123")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	bob, err := auth.Register("bob", "bob@x.com", "pw123")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	aliceGoal, err := goals.Create(alice.ID, "Learn Go", "")
	if err != nil {
		t.Fatalf("Create goal failed: %v", err)
	}

	// Bob records progress against Alice's goal. The entry is stamped
	// with Bob's id; goal ownership is not cross-checked. This pins the
	// known integrity gap.
	entry, err := goals.RecordProgress(bob.ID, aliceGoal.ID, "borrowed goal")
	if err != nil {
		t.Fatalf("RecordProgress failed: %v", err)
	}
	if entry.UserID != bob.ID {
		t.Errorf("entry user = %q, want bob %q", entry.UserID, bob.ID)
	}

	bobEntries, err := goals.Progresses(bob.ID)
	if err != nil {
		t.Fatalf("Progresses failed: %v", err)
	}
	if len(bobEntries) != 1 {
		t.Fatalf("bob entries = %d, want 1", len(bobEntries))
	}
	if bobEntries[0].GoalID != aliceGoal.ID {
		t.Errorf("entry goal = %q, want %q", bobEntries[0].GoalID, aliceGoal.ID)
	}

	aliceEntries, err := goals.Progresses(alice.ID)
	if err != nil {
		t.Fatalf("Progresses failed: %v", err)
	}
	if len(aliceEntries) != 0 {
		t.Errorf("alice entries = %d, want 0", len(aliceEntries))
	}
}

func TestRecordProgressAcceptsNonexistentGoal(t *testing.T) {
	auth, goals, _ := newTrackerServices(t)

	alice, err := auth.Register("alice", "alice@x.com", "pw123")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	entry, err := goals.RecordProgress(alice.ID, "no-such-goal", "still counts")
	if err != nil {
		t.Fatalf("RecordProgress with nonexistent goal failed: %v", err)
	}
	if entry.GoalID != "no-such-goal" {
		t.Errorf("entry goal = %q, want the submitted id", entry.GoalID)
	}
}

func TestRecordProgressValidation(t *testing.T) {
	auth, goals, _ := newTrackerServices(t)

	alice, err := auth.Register("alice", "alice@x.com", "pw123")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	_, err = goals.RecordProgress(alice.ID, "some-goal", "")
	if !errors.Is(err, ErrDetailRequired) {
		t.Errorf("empty detail error = %v, want ErrDetailRequired", err)
	}

	_, err = goals.RecordProgress(alice.ID, "", "did things")
	if !errors.Is(err, ErrGoalRequired) {
		t.Errorf("empty goal error = %v, want ErrGoalRequired", err)
	}
}

func TestSkillCreateRequiresName(t *testing.T) {
	auth, _, skills := newTrackerServices(t)

	alice, err := auth.Register("alice", "alice@x.com", "pw123")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	_, err = skills.Create(alice.ID, "   ", "whitespace only")
	if !errors.Is(err, ErrTitleRequired) {
		t.Errorf("Create error = %v, want ErrTitleRequired", err)
	}

	skill, err := skills.Create(alice.ID, "SQL", "")
	if err != nil {
		t.Fatalf("Create skill failed: %v", err)
	}
	if skill.Name != "SQL" || skill.UserID != alice.ID {
		t.Errorf("skill = %+v, want SQL owned by alice", skill)
	}
}
