package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStudentName_CommaForm(t *testing.T) {
	got := ParseStudentName("Cohen, Sarah")
	require.NotNil(t, got)
	assert.Equal(t, "Sarah", got.FirstName)
	assert.Equal(t, "Cohen", got.LastName)
}

func TestParseStudentName_SpaceForm(t *testing.T) {
	got := ParseStudentName("Sarah Cohen")
	require.NotNil(t, got)
	assert.Equal(t, "Sarah", got.FirstName)
	assert.Equal(t, "Cohen", got.LastName)

	// token kedua dst semuanya jadi surname
	got = ParseStudentName("Anna van der Berg")
	require.NotNil(t, got)
	assert.Equal(t, "Anna", got.FirstName)
	assert.Equal(t, "van der Berg", got.LastName)
}

func TestParseStudentName_MessyWhitespace(t *testing.T) {
	got := ParseStudentName("   Cohen ,   Sarah   ")
	require.NotNil(t, got)
	assert.Equal(t, "Sarah", got.FirstName)
	assert.Equal(t, "Cohen", got.LastName)
}

func TestParseStudentName_Unparseable(t *testing.T) {
	assert.Nil(t, ParseStudentName(""))
	assert.Nil(t, ParseStudentName("   "))
	assert.Nil(t, ParseStudentName("Madonna"))   // kurang dari dua token
	assert.Nil(t, ParseStudentName("Cohen,"))    // first name kosong
	assert.Nil(t, ParseStudentName(", Sarah"))   // surname kosong
}

func TestParseParentNames_SharedSurname(t *testing.T) {
	got := ParseParentNames("Cohen, Yehuda and Bracha")
	require.Len(t, got, 2)
	assert.Equal(t, "Yehuda", got[0].FirstName)
	assert.Equal(t, "Cohen", got[0].LastName)
	assert.Equal(t, "Bracha", got[1].FirstName)
	assert.Equal(t, "Cohen", got[1].LastName)
}

func TestParseParentNames_SingleParent(t *testing.T) {
	got := ParseParentNames("Cohen, Moshe")
	require.Len(t, got, 1)
	assert.Equal(t, "Moshe", got[0].FirstName)
	assert.Equal(t, "Cohen", got[0].LastName)
}

func TestParseParentNames_NoCommaNoSurname(t *testing.T) {
	// tanpa koma di segmen pertama tidak ada surname bersama
	got := ParseParentNames("Yehuda and Bracha")
	require.Len(t, got, 2)
	assert.Equal(t, "Yehuda", got[0].FirstName)
	assert.Empty(t, got[0].LastName)
	assert.Equal(t, "Bracha", got[1].FirstName)
	assert.Empty(t, got[1].LastName)
}

func TestParseParentNames_CaseInsensitiveAnd(t *testing.T) {
	got := ParseParentNames("Cohen, Moshe AND Rivka")
	require.Len(t, got, 2)
	assert.Equal(t, "Rivka", got[1].FirstName)
	assert.Equal(t, "Cohen", got[1].LastName)
}

func TestParseParentNames_AndInsideNameNotSplit(t *testing.T) {
	// "and" sebagai substring nama (Sandy) tidak boleh ikut kepecah
	got := ParseParentNames("Cohen, Sandy")
	require.Len(t, got, 1)
	assert.Equal(t, "Sandy", got[0].FirstName)
}

func TestParseParentNames_Empty(t *testing.T) {
	assert.Nil(t, ParseParentNames(""))
	assert.Nil(t, ParseParentNames("   "))
	assert.Nil(t, ParseParentNames(" and "))
}
