package extract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taxtract/internal/domain"
	"taxtract/internal/extract"
	"taxtract/internal/profile"
)

func profileFor(t *testing.T, dt domain.DocumentType) *profile.FormProfile {
	t.Helper()
	p, ok := profile.NewRegistry().Profile(dt)
	require.True(t, ok)
	return p
}

func TestMapStructured_AliasMapping(t *testing.T) {
	p := profileFor(t, domain.DocType1099INT)
	bag := map[string]string{
		"InterestIncome": "$1,500.00",
		"Payer.Name":     "First National Bank",
		"Payer.TIN":      "12-3456789",
	}

	fs := extract.MapStructured(bag, p)

	v, ok := fs.Amount("interestIncome")
	assert.True(t, ok)
	assert.Equal(t, 1500.0, v)

	name, ok := fs.Text("payerName")
	assert.True(t, ok)
	assert.Equal(t, "First National Bank", name)

	tin, ok := fs.Text("payerTIN")
	assert.True(t, ok)
	assert.Equal(t, "12-3456789", tin)
}

func TestMapStructured_FirstAliasWins(t *testing.T) {
	p := profileFor(t, domain.DocType1099INT)
	bag := map[string]string{
		"InterestIncome": "1500",
		"Box1":           "999",
	}

	fs := extract.MapStructured(bag, p)

	v, ok := fs.Amount("interestIncome")
	assert.True(t, ok)
	assert.Equal(t, 1500.0, v)
}

func TestMapStructured_SecondAliasFallback(t *testing.T) {
	p := profileFor(t, domain.DocType1099INT)
	bag := map[string]string{"Box1": "999"}

	fs := extract.MapStructured(bag, p)

	v, ok := fs.Amount("interestIncome")
	assert.True(t, ok)
	assert.Equal(t, 999.0, v)
}

func TestMapStructured_UnknownKeysIgnored(t *testing.T) {
	p := profileFor(t, domain.DocType1099INT)
	bag := map[string]string{"SomethingElse": "42"}

	fs := extract.MapStructured(bag, p)
	assert.Empty(t, fs.Fields)
}

func TestMapStructured_PassThroughSniffing(t *testing.T) {
	p := profile.Generic()
	bag := map[string]string{
		"Foo": "$123.45",
		"Bar": "hello world",
		"Nil": "   ",
	}

	fs := extract.MapStructured(bag, p)

	v, ok := fs.Amount("Foo")
	assert.True(t, ok)
	assert.Equal(t, 123.45, v)

	s, ok := fs.Text("Bar")
	assert.True(t, ok)
	assert.Equal(t, "hello world", s)

	assert.False(t, fs.Has("Nil"))
}

func TestMapStructured_EmptyBag(t *testing.T) {
	p := profileFor(t, domain.DocTypeW2)
	fs := extract.MapStructured(nil, p)
	assert.Empty(t, fs.Fields)
}
