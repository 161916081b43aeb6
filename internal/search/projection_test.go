package search

import (
	"testing"

	"staffdir/internal/core"
	"staffdir/internal/database/mongodb/model"

	"github.com/stretchr/testify/require"
)

func sampleEmployee() *model.Employee {
	return &model.Employee{
		ID:         101,
		TenantID:   1,
		Name:       "Lin Wei",
		Department: "Eng",
		Location:   "Taipei",
		Position:   "Backend",
		Company:    "Acme",
		Status:     core.StatusActive,
		ContactInfo: model.ContactInfo{
			Email: "lin.wei@example.com",
			Phone: "+886-2-0000-0000",
		},
	}
}

func TestProjectReturnsExactlyConfiguredFields(t *testing.T) {
	result := Project(sampleEmployee(), []string{"id", "name", "department"})

	require.Len(t, result, 3)
	require.Equal(t, int64(101), result["id"])
	require.Equal(t, "Lin Wei", result["name"])
	require.Equal(t, "Eng", result["department"])
}

func TestProjectAlwaysIncludesIdentifier(t *testing.T) {
	// Identifier comes back even when the tenant did not configure it;
	// cursor continuation needs it in every record.
	result := Project(sampleEmployee(), []string{"name"})

	require.Len(t, result, 2)
	require.Equal(t, int64(101), result["id"])
	require.Equal(t, "Lin Wei", result["name"])
}

func TestProjectNeverLeaksUnconfiguredFields(t *testing.T) {
	result := Project(sampleEmployee(), []string{"name"})
	require.NotContains(t, result, "contact_info")
	require.NotContains(t, result, "status")
	require.NotContains(t, result, "location")
}

func TestValidateFieldsRejectsUnknownNames(t *testing.T) {
	require.NoError(t, ValidateFields([]string{"id", "name", "contact_info"}))

	err := ValidateFields([]string{"name", "salary"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "salary")
}

func TestAllowedFieldsSortedAndComplete(t *testing.T) {
	fields := AllowedFields()
	require.Equal(t, []string{
		"company", "contact_info", "department", "id", "location", "name", "position", "status",
	}, fields)
}

func TestProjectAllPreservesOrder(t *testing.T) {
	first := sampleEmployee()
	second := sampleEmployee()
	second.ID = 102
	second.Name = "Chen Yu"

	results := ProjectAll([]*model.Employee{first, second}, []string{"name"})
	require.Len(t, results, 2)
	require.Equal(t, int64(101), results[0]["id"])
	require.Equal(t, int64(102), results[1]["id"])
}

func TestProjectAllEmptyPage(t *testing.T) {
	results := ProjectAll(nil, []string{"name"})
	require.NotNil(t, results)
	require.Empty(t, results)
}
