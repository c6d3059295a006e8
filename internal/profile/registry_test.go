package profile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taxtract/internal/domain"
	"taxtract/internal/profile"
)

func TestNewRegistry_CoversAllDocumentTypes(t *testing.T) {
	reg := profile.NewRegistry()
	assert.Equal(t, domain.AllDocumentTypes, reg.Types())

	for _, dt := range domain.AllDocumentTypes {
		p, ok := reg.Profile(dt)
		require.True(t, ok, "missing profile for %s", dt)
		assert.Equal(t, dt, p.Type)
		assert.NotEmpty(t, p.Fields, "%s has no fields", dt)
		assert.NotEmpty(t, p.Indicators, "%s has no indicators", dt)
		assert.NotEmpty(t, p.Critical, "%s has no critical fields", dt)
		assert.False(t, p.PassThrough)
	}
}

func TestRegistry_CriticalAndAdjacentFieldsDeclared(t *testing.T) {
	reg := profile.NewRegistry()
	for _, dt := range reg.Types() {
		p, _ := reg.Profile(dt)
		for _, name := range p.Critical {
			_, ok := p.Spec(name)
			assert.True(t, ok, "%s: critical field %q not declared", dt, name)
		}
		for _, pair := range p.Adjacent {
			for _, name := range pair {
				spec, ok := p.Spec(name)
				require.True(t, ok, "%s: adjacent field %q not declared", dt, name)
				assert.Equal(t, domain.KindAmount, spec.Kind,
					"%s: adjacent field %q must be an amount", dt, name)
			}
		}
	}
}

func TestRegistry_IdentifiersDeclaredBeforeAmounts(t *testing.T) {
	reg := profile.NewRegistry()
	for _, dt := range reg.Types() {
		p, _ := reg.Profile(dt)
		seenAmount := false
		for _, spec := range p.Fields {
			if spec.Kind == domain.KindAmount {
				seenAmount = true
			}
			if spec.Kind == domain.KindIdentifier {
				assert.False(t, seenAmount,
					"%s: identifier %q declared after an amount field", dt, spec.Name)
			}
		}
	}
}

func TestNewRegistryWithTolerance(t *testing.T) {
	tol := profile.Tolerance{Relative: 0.25, Absolute: 50}
	reg := profile.NewRegistryWithTolerance(tol)
	for _, dt := range reg.Types() {
		p, _ := reg.Profile(dt)
		assert.Equal(t, tol, p.Tolerance)
	}
}

func TestRegistry_UnknownType(t *testing.T) {
	reg := profile.NewRegistry()
	_, ok := reg.Profile(domain.DocTypeUnknown)
	assert.False(t, ok)
}

func TestGeneric(t *testing.T) {
	p := profile.Generic()
	assert.True(t, p.PassThrough)
	assert.Empty(t, p.Fields)
	assert.Equal(t, domain.DocTypeUnknown, p.Type)
}
