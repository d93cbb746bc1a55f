// Copyright (c) 2025 the typematch authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package classify_test

import (
	"testing"

	"github.com/typematch/typematch/classify"
	"github.com/typematch/typematch/testutil"
)

func TestCompletenessEmptySchema(t *testing.T) {
	st := testutil.SetupTestStore(t)

	report, err := classify.CheckCompleteness(st)
	if err != nil {
		t.Fatalf("CheckCompleteness failed: %v", err)
	}

	if len(report.IncompleteTypes) != 1 || report.IncompleteTypes[0].Type != classify.SentinelNoTypes {
		t.Errorf("Expected the no-types sentinel, got %v", report.IncompleteTypes)
	}
	if len(report.PropertiesWithoutValues) != 1 || report.PropertiesWithoutValues[0] != classify.SentinelNoProperties {
		t.Errorf("Expected the no-properties sentinel, got %v", report.PropertiesWithoutValues)
	}
}

func TestCompletenessTypeWithoutProperties(t *testing.T) {
	st := testutil.SetupTestStore(t)
	testutil.CreateTestType(t, st, "Шайба")
	testutil.CreateTestProperty(t, st, "цвет")
	testutil.AddTestPossibleValue(t, st, "цвет", "красный")

	report, err := classify.CheckCompleteness(st)
	if err != nil {
		t.Fatalf("CheckCompleteness failed: %v", err)
	}

	if len(report.IncompleteTypes) != 1 {
		t.Fatalf("Expected one incomplete type, got %v", report.IncompleteTypes)
	}
	got := report.IncompleteTypes[0]
	if got.Type != "Шайба" || got.Reason != classify.ReasonNoProperties {
		t.Errorf("Expected Шайба/no properties, got %+v", got)
	}
	if len(report.PropertiesWithoutValues) != 0 {
		t.Errorf("Expected no catalog gaps, got %v", report.PropertiesWithoutValues)
	}
}

func TestCompletenessTypeWithoutPropertyValues(t *testing.T) {
	st := testutil.SetupTestStore(t)
	testutil.CreateTestType(t, st, "Шайба")
	testutil.CreateTestProperty(t, st, "цвет")
	testutil.AddTestPossibleValue(t, st, "цвет", "красный")
	testutil.LinkTestProperty(t, st, "Шайба", "цвет")

	report, err := classify.CheckCompleteness(st)
	if err != nil {
		t.Fatalf("CheckCompleteness failed: %v", err)
	}

	if len(report.IncompleteTypes) != 1 {
		t.Fatalf("Expected one incomplete type, got %v", report.IncompleteTypes)
	}
	got := report.IncompleteTypes[0]
	if got.Type != "Шайба" || got.Reason != classify.ReasonNoPropertyValues {
		t.Errorf("Expected Шайба/no property values, got %+v", got)
	}
}

func TestCompletenessPropertyWithoutCatalog(t *testing.T) {
	st := testutil.SetupTestStore(t)
	testutil.CreateTestType(t, st, "Шайба")
	testutil.CreateTestProperty(t, st, "цвет")
	testutil.CreateTestProperty(t, st, "размер")
	testutil.AddTestPossibleValue(t, st, "цвет", "красный")
	testutil.LinkTestProperty(t, st, "Шайба", "цвет")
	testutil.SetTestPropertyValues(t, st, "Шайба", "цвет", []string{"красный"})

	report, err := classify.CheckCompleteness(st)
	if err != nil {
		t.Fatalf("CheckCompleteness failed: %v", err)
	}

	if len(report.IncompleteTypes) != 0 {
		t.Errorf("Expected no incomplete types, got %v", report.IncompleteTypes)
	}
	if len(report.PropertiesWithoutValues) != 1 || report.PropertiesWithoutValues[0] != "размер" {
		t.Errorf("Expected размер in catalog gaps, got %v", report.PropertiesWithoutValues)
	}
}

func TestCompletenessCompleteSchemaIsClean(t *testing.T) {
	st := testutil.SetupTestStore(t)
	testutil.CreateTestType(t, st, "Шайба")
	testutil.CreateTestProperty(t, st, "цвет")
	testutil.AddTestPossibleValue(t, st, "цвет", "красный")
	testutil.LinkTestProperty(t, st, "Шайба", "цвет")
	testutil.SetTestPropertyValues(t, st, "Шайба", "цвет", []string{"красный"})

	report, err := classify.CheckCompleteness(st)
	if err != nil {
		t.Fatalf("CheckCompleteness failed: %v", err)
	}
	if len(report.IncompleteTypes) != 0 || len(report.PropertiesWithoutValues) != 0 {
		t.Errorf("Expected a clean report, got %+v", report)
	}
}

func TestCompletenessDanglingLinkIsADefect(t *testing.T) {
	st := testutil.SetupTestStore(t)
	testutil.CreateTestType(t, st, "Шайба")
	testutil.CreateTestProperty(t, st, "цвет")
	testutil.LinkTestProperty(t, st, "Шайба", "цвет")

	// Break the invariant behind the store's back
	if _, err := st.DB().Exec(`DELETE FROM properties WHERE name = 'цвет'`); err != nil {
		t.Fatalf("Failed to break invariant: %v", err)
	}

	if _, err := classify.CheckCompleteness(st); err == nil {
		t.Error("Expected an error for a dangling requirement link")
	}
}
