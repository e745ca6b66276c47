// Copyright 2026 Andrei Vekin. All rights reserved.

package cplx

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		z      Complex
		result string
	}{
		{New(0, 0), "(0,0)"},
		{New(0, negZero), "(0,-0)"},
		{New(1.5, -2), "(1.5,-2)"},
		{New(0.1, 0.2), "(0.1,0.2)"},
		{New(1e21, 5e-324), "(1e+21,5e-324)"},
		{New(nan, nan), "(NaN,NaN)"},
		{New(inf, ninf), "(+Inf,-Inf)"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.result, test.z.String())
		})
	}
}

func TestFromString(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		input  string
		result Complex
		fails  bool
	}{
		{"(1.5,-2)", New(1.5, -2), false},
		{"(0,-0)", New(0, negZero), false},
		{"  ( 1 , 2 )  ", New(1, 2), false},
		{"(NaN,NaN)", NaN, false},
		{"(+Inf,-Inf)", New(inf, ninf), false},
		{"(1e3,-2.5e-2)", New(1000, -0.025), false},
		{"", Zero, true},
		{"1,2", Zero, true},
		{"(1,2", Zero, true},
		{"(12)", Zero, true},
		{"(a,2)", Zero, true},
		{"(1,b)", Zero, true},
		{"(,)", Zero, true},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			z, err := FromString(test.input)
			if test.fails {
				a.Error(err)
				return
			}
			a.NoError(err)
			a.True(test.result.Eq(z), "%q parsed as %v", test.input, z)
		})
	}
}

func TestStringRoundTrip(t *testing.T) {
	a := assert.New(t)
	values := []Complex{
		New(0, 0), New(negZero, negZero), New(1.0 / 3.0, -2.0 / 7.0),
		New(maxVal, 5e-324), New(nan, 1), New(inf, nan), New(-1.25e-17, 3),
	}
	for _, z := range values {
		a.True(z.Eq(MustFromString(z.String())), "%v", z)
	}
}

func TestMustFromString(t *testing.T) {
	a := assert.New(t)
	a.NotPanics(func() {
		MustFromString("(1,2)")
	})
	a.Panics(func() {
		MustFromString("bad")
	})
}

func TestJSONStringMode(t *testing.T) {
	a := assert.New(t)
	data, err := json.Marshal(New(1.5, -2))
	a.NoError(err)
	a.Equal(`"(1.5,-2)"`, string(data))

	var z Complex
	a.NoError(json.Unmarshal(data, &z))
	a.True(New(1.5, -2).Eq(z))

	// Non-finite components survive the string form.
	data, err = json.Marshal(New(inf, nan))
	a.NoError(err)
	a.NoError(json.Unmarshal(data, &z))
	a.True(New(inf, nan).Eq(z))

	a.Error(json.Unmarshal([]byte(`"nonsense"`), &z))
	a.Error(json.Unmarshal([]byte(`42`), &z))
	a.Error(json.Unmarshal([]byte(``), &z))
}

func TestJSONObjectMode(t *testing.T) {
	a := assert.New(t)
	defer func() {
		JSONMode = JSONModeString
	}()
	JSONMode = JSONModeObject

	data, err := json.Marshal(New(1.5, -2))
	a.NoError(err)
	a.Equal(`{"re":1.5,"im":-2}`, string(data))

	var z Complex
	a.NoError(json.Unmarshal(data, &z))
	a.True(New(1.5, -2).Eq(z))

	_, err = json.Marshal(New(inf, 0))
	a.Error(err)
	_, err = json.Marshal(NaN)
	a.Error(err)
}

// The object form is accepted regardless of the marshaling mode.
func TestJSONUnmarshalBothForms(t *testing.T) {
	a := assert.New(t)
	var z Complex
	a.NoError(json.Unmarshal([]byte(`{"re":3,"im":-4}`), &z))
	a.True(New(3, -4).Eq(z))
	a.NoError(json.Unmarshal([]byte(`"(3,-4)"`), &z))
	a.True(New(3, -4).Eq(z))
	a.Error(json.Unmarshal([]byte(`{"re":"x"}`), &z))
}

func TestJSONStructField(t *testing.T) {
	a := assert.New(t)
	type payload struct {
		Name  string  `json:"name"`
		Value Complex `json:"value"`
	}
	in := payload{Name: "probe", Value: New(0.5, -0.5)}
	data, err := json.Marshal(in)
	a.NoError(err)
	var out payload
	a.NoError(json.Unmarshal(data, &out))
	a.Equal(in.Name, out.Name)
	a.True(in.Value.Eq(out.Value))
}
