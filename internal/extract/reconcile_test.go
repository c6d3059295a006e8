package extract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"taxtract/internal/domain"
	"taxtract/internal/extract"
)

func TestReconcile_FillsMissingAmounts(t *testing.T) {
	p := profileFor(t, domain.DocType1099INT)
	structured := domain.NewFieldSet()
	ocr := domain.NewFieldSet()
	ocr.SetAmount("interestIncome", 1500)

	out := extract.Reconcile(structured, ocr, p)

	v, ok := out.Amount("interestIncome")
	assert.True(t, ok)
	assert.Equal(t, 1500.0, v)
}

func TestReconcile_FillsStructuredZero(t *testing.T) {
	p := profileFor(t, domain.DocType1099INT)
	structured := domain.NewFieldSet()
	structured.SetAmount("interestIncome", 0)
	ocr := domain.NewFieldSet()
	ocr.SetAmount("interestIncome", 1500)

	out := extract.Reconcile(structured, ocr, p)

	v, _ := out.Amount("interestIncome")
	assert.Equal(t, 1500.0, v)
}

func TestReconcile_OverridesBeyondTolerance(t *testing.T) {
	p := profileFor(t, domain.DocType1099INT)
	structured := domain.NewFieldSet()
	structured.SetAmount("interestIncome", 100)
	ocr := domain.NewFieldSet()
	ocr.SetAmount("interestIncome", 5000)

	out := extract.Reconcile(structured, ocr, p)

	v, _ := out.Amount("interestIncome")
	assert.Equal(t, 5000.0, v)
}

func TestReconcile_KeepsStructuredWithinTolerance(t *testing.T) {
	p := profileFor(t, domain.DocType1099INT)
	structured := domain.NewFieldSet()
	structured.SetAmount("interestIncome", 100)
	ocr := domain.NewFieldSet()
	ocr.SetAmount("interestIncome", 105)

	out := extract.Reconcile(structured, ocr, p)

	v, _ := out.Amount("interestIncome")
	assert.Equal(t, 100.0, v)
}

func TestReconcile_OCRAbsentKeepsStructured(t *testing.T) {
	p := profileFor(t, domain.DocType1099INT)
	structured := domain.NewFieldSet()
	structured.SetAmount("interestIncome", 1500)
	ocr := domain.NewFieldSet()

	out := extract.Reconcile(structured, ocr, p)

	v, _ := out.Amount("interestIncome")
	assert.Equal(t, 1500.0, v)
}

func TestReconcile_AdjacencySwap(t *testing.T) {
	p := profileFor(t, domain.DocType1099INT)
	// Values landed in each other's boxes on the structured side.
	structured := domain.NewFieldSet()
	structured.SetAmount("interestIncome", 100)
	structured.SetAmount("earlyWithdrawalPenalty", 3)
	ocr := domain.NewFieldSet()
	ocr.SetAmount("interestIncome", 3)
	ocr.SetAmount("earlyWithdrawalPenalty", 100)

	out := extract.Reconcile(structured, ocr, p)

	v, _ := out.Amount("interestIncome")
	assert.Equal(t, 3.0, v)
	v, _ = out.Amount("earlyWithdrawalPenalty")
	assert.Equal(t, 100.0, v)
}

func TestReconcile_NoSwapWhenZeroInvolved(t *testing.T) {
	p := profileFor(t, domain.DocType1099INT)
	structured := domain.NewFieldSet()
	structured.SetAmount("interestIncome", 100)
	structured.SetAmount("earlyWithdrawalPenalty", 0)
	ocr := domain.NewFieldSet()
	ocr.SetAmount("interestIncome", 100)
	ocr.SetAmount("earlyWithdrawalPenalty", 0)

	out := extract.Reconcile(structured, ocr, p)

	v, _ := out.Amount("interestIncome")
	assert.Equal(t, 100.0, v)
	v, _ = out.Amount("earlyWithdrawalPenalty")
	assert.Equal(t, 0.0, v)
}

func TestReconcile_BoilerplateTextReplaced(t *testing.T) {
	p := profileFor(t, domain.DocType1099INT)
	structured := domain.NewFieldSet()
	structured.SetText("payerName", domain.KindFreeText, "PAYER'S name, street address, city or town")
	ocr := domain.NewFieldSet()
	ocr.SetText("payerName", domain.KindFreeText, "First National Bank")

	out := extract.Reconcile(structured, ocr, p)

	name, _ := out.Text("payerName")
	assert.Equal(t, "First National Bank", name)
}

func TestReconcile_RealTextKept(t *testing.T) {
	p := profileFor(t, domain.DocType1099INT)
	structured := domain.NewFieldSet()
	structured.SetText("payerName", domain.KindFreeText, "First National Bank")
	ocr := domain.NewFieldSet()
	ocr.SetText("payerName", domain.KindFreeText, "First Natl Bank")

	out := extract.Reconcile(structured, ocr, p)

	name, _ := out.Text("payerName")
	assert.Equal(t, "First National Bank", name)
}

func TestReconcile_NonCriticalAdditiveFill(t *testing.T) {
	p := profileFor(t, domain.DocType1099INT)
	structured := domain.NewFieldSet()
	ocr := domain.NewFieldSet()
	ocr.SetAmount("foreignTaxPaid", 12)

	out := extract.Reconcile(structured, ocr, p)

	v, ok := out.Amount("foreignTaxPaid")
	assert.True(t, ok)
	assert.Equal(t, 12.0, v)
}

func TestReconcile_Idempotent(t *testing.T) {
	p := profileFor(t, domain.DocType1099INT)
	structured := domain.NewFieldSet()
	structured.SetAmount("interestIncome", 100)
	structured.SetAmount("earlyWithdrawalPenalty", 3)
	structured.SetText("payerName", domain.KindFreeText, "PAYER'S name, street address, city or town")
	ocr := domain.NewFieldSet()
	ocr.SetAmount("interestIncome", 3)
	ocr.SetAmount("earlyWithdrawalPenalty", 100)
	ocr.SetText("payerName", domain.KindFreeText, "First National Bank")

	once := extract.Reconcile(structured, ocr, p)
	twice := extract.Reconcile(once, ocr, p)

	assert.Equal(t, once.Fields, twice.Fields)
}
