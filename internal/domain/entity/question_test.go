package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions_ByLabel(t *testing.T) {
	opts := Options{A: "один", B: "два", C: "три", D: "четыре"}

	text, ok := opts.ByLabel(OptionLabelA)
	assert.True(t, ok)
	assert.Equal(t, "один", text)

	text, ok = opts.ByLabel(OptionLabelD)
	assert.True(t, ok)
	assert.Equal(t, "четыре", text)

	_, ok = opts.ByLabel("e")
	assert.False(t, ok, "Метка вне a..d не существует")

	_, ok = opts.ByLabel("")
	assert.False(t, ok)
}

func TestOptions_ScanValue_Roundtrip(t *testing.T) {
	// Arrange
	original := Options{A: "alpha", B: "beta", C: "gamma", D: "delta"}

	// Act: Value -> Scan
	value, err := original.Value()
	require.NoError(t, err)

	var restored Options
	err = restored.Scan(value)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, original, restored)
}

func TestOptions_Scan_Nil(t *testing.T) {
	var opts Options
	err := opts.Scan(nil)

	require.NoError(t, err)
	assert.Equal(t, Options{}, opts)
}

func TestOptions_Scan_InvalidType(t *testing.T) {
	var opts Options
	err := opts.Scan(12345)

	assert.Error(t, err, "Scan должен отклонять не-[]byte значения")
}

func TestQuestion_IsCorrect(t *testing.T) {
	q := &Question{
		Options:       Options{A: "a", B: "b", C: "c", D: "d"},
		CorrectOption: OptionLabelB,
	}

	assert.True(t, q.IsCorrect(OptionLabelB))
	assert.False(t, q.IsCorrect(OptionLabelA))
	assert.False(t, q.IsCorrect(""), "Пустая метка никогда не является верной")
}

func TestQuestion_IsValidOption(t *testing.T) {
	q := &Question{Options: Options{A: "a", B: "b", C: "c", D: "d"}}

	for _, label := range []string{OptionLabelA, OptionLabelB, OptionLabelC, OptionLabelD} {
		assert.True(t, q.IsValidOption(label))
	}
	assert.False(t, q.IsValidOption("x"))
}
