package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParams_AddDefaults(t *testing.T) {
	params := NewParams()

	p, err := params.Add("CustomerID", TypeInt32, 42)
	require.NoError(t, err)

	assert.Equal(t, "CustomerID", p.Name())
	assert.Equal(t, TypeInt32, p.Type)
	assert.Equal(t, 42, p.Value)
	assert.Equal(t, Input, p.Direction)
	// Size defaulting applies to string-like types only.
	assert.Zero(t, p.Size)
	assert.Equal(t, 1, params.Len())
}

func TestParams_StringSizeDefaults(t *testing.T) {
	params := NewParams()

	s, err := params.Add("Name", TypeString, "alpha")
	require.NoError(t, err)
	assert.Equal(t, DefaultStringSize, s.Size)

	b, err := params.Add("Blob", TypeBytes, []byte{1})
	require.NoError(t, err)
	assert.Equal(t, DefaultStringSize, b.Size)
}

func TestParams_AddDuplicate(t *testing.T) {
	params := NewParams()

	first, err := params.Add("Name", TypeString, "alpha")
	require.NoError(t, err)

	_, err = params.Add("Name", TypeString, "beta")
	var dup *DuplicateParameterError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "Name", dup.Name)

	// The collection keeps exactly one entry for that name: the first.
	assert.Equal(t, 1, params.Len())
	got, err := params.Get("Name")
	require.NoError(t, err)
	assert.Same(t, first, got)
	assert.Equal(t, "alpha", got.Value)
}

func TestParams_GetStripsSigil(t *testing.T) {
	params := NewParams()
	p, err := params.Add("X", TypeInt64, int64(7))
	require.NoError(t, err)

	bare, err := params.Get("X")
	require.NoError(t, err)
	sigil, err := params.Get("@X")
	require.NoError(t, err)

	assert.Same(t, p, bare)
	assert.Same(t, p, sigil)
}

func TestParams_GetExactMatchOtherwise(t *testing.T) {
	params := NewParams()
	_, err := params.Add("CustomerID", TypeInt32, 1)
	require.NoError(t, err)

	// Lookups other than RETURN_VALUE are exact-match on the stored key.
	_, err = params.Get("customerid")
	var notFound *ParameterNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "customerid", notFound.Name)
}

func TestParams_GetUnknown(t *testing.T) {
	params := NewParams()

	_, err := params.Get("Missing")
	var notFound *ParameterNotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestParams_ReturnValueSynthesis(t *testing.T) {
	params := NewParams()

	p, err := params.Get("RETURN_VALUE")
	require.NoError(t, err)
	assert.Equal(t, "RETURN_VALUE", p.Name())
	assert.Equal(t, TypeInt32, p.Type)
	assert.Equal(t, Output, p.Direction)
	assert.Nil(t, p.Value)
	assert.Equal(t, 1, params.Len())

	// Second access returns the same instance, not a new one.
	again, err := params.Get("RETURN_VALUE")
	require.NoError(t, err)
	assert.Same(t, p, again)
	assert.Equal(t, 1, params.Len())
}

func TestParams_ReturnValueCaseInsensitive(t *testing.T) {
	params := NewParams()

	p, err := params.Get("Return_Value")
	require.NoError(t, err)
	// The synthetic entry is keyed by the original, non-normalized name.
	assert.Equal(t, "Return_Value", p.Name())
}

func TestParams_ReturnValueKeepsSigilKey(t *testing.T) {
	params := NewParams()

	p, err := params.Get("@RETURN_VALUE")
	require.NoError(t, err)
	assert.Equal(t, "@RETURN_VALUE", p.Name())

	again, err := params.Get("@RETURN_VALUE")
	require.NoError(t, err)
	assert.Same(t, p, again)
}

func TestParams_InsertionOrder(t *testing.T) {
	params := NewParams()
	names := []string{"C", "A", "B"}
	for _, n := range names {
		_, err := params.Add(n, TypeString, n)
		require.NoError(t, err)
	}

	var got []string
	params.Each(func(p *Parameter) {
		got = append(got, p.Name())
	})
	assert.Equal(t, names, got)
}

func TestParams_Timeout(t *testing.T) {
	params := NewParams()
	assert.Equal(t, DefaultTimeout, params.Timeout())

	require.NoError(t, params.SetTimeout(0))
	assert.Equal(t, 0, params.Timeout())

	require.NoError(t, params.SetTimeout(120))
	assert.Equal(t, 120, params.Timeout())

	err := params.SetTimeout(-1)
	assert.ErrorIs(t, err, ErrNegativeTimeout)
	assert.Equal(t, 120, params.Timeout())
}

func TestParams_AddOutputSize(t *testing.T) {
	params := NewParams()

	p, err := params.AddOutput("Name", TypeString, 200)
	require.NoError(t, err)
	assert.Equal(t, Output, p.Direction)
	assert.Equal(t, 200, p.Size)

	q, err := params.AddOutput("Other", TypeString, 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultStringSize, q.Size)

	n, err := params.AddOutput("Total", TypeInt64, 0)
	require.NoError(t, err)
	assert.Zero(t, n.Size)
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "Input", Input.String())
	assert.Equal(t, "Output", Output.String())
	assert.Equal(t, "InputOutput", InputOutput.String())
	assert.Equal(t, "ReturnValue", ReturnValue.String())
}

func TestTypeCodeString(t *testing.T) {
	assert.Equal(t, "Int32", TypeInt32.String())
	assert.Equal(t, "String", TypeString.String())
	assert.Equal(t, "UUID", TypeUUID.String())
}
