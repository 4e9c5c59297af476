package types

import (
	"testing"

	ierr "github.com/quickinvoice/quickinvoice/internal/errors"
	"github.com/stretchr/testify/assert"
)

func TestHeaderFieldValidate(t *testing.T) {
	valid := []HeaderField{
		HeaderFieldInvoiceNumber,
		HeaderFieldDate,
		HeaderFieldDueDate,
		HeaderFieldCompanyName,
		HeaderFieldCompanyEmail,
		HeaderFieldBillTo,
		HeaderFieldNotes,
	}
	for _, f := range valid {
		assert.NoError(t, f.Validate(), "field %s", f)
	}

	for _, f := range []HeaderField{"", "items", "total", "Company_Name"} {
		err := f.Validate()
		assert.Error(t, err, "field %q", f)
		assert.True(t, ierr.IsValidation(err))
	}
}

func TestItemFieldValidate(t *testing.T) {
	for _, f := range []ItemField{ItemFieldDescription, ItemFieldQuantity, ItemFieldRate} {
		assert.NoError(t, f.Validate(), "field %s", f)
	}

	err := ItemField("amount").Validate()
	assert.Error(t, err)
	assert.True(t, ierr.IsValidation(err))
}

func TestItemFieldIsNumeric(t *testing.T) {
	assert.True(t, ItemFieldQuantity.IsNumeric())
	assert.True(t, ItemFieldRate.IsNumeric())
	assert.False(t, ItemFieldDescription.IsNumeric())
}

func TestExportStatusValidate(t *testing.T) {
	for _, s := range []ExportStatus{ExportStatusInProgress, ExportStatusReady, ExportStatusFailed} {
		assert.NoError(t, s.Validate(), "status %s", s)
	}

	err := ExportStatus("idle").Validate()
	assert.Error(t, err)
	assert.True(t, ierr.IsValidation(err))
}
