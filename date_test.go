package converter_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	converter "github.com/fxcache/converter"
)

func TestNormalizeDateValid(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	values := []struct {
		value    string
		expected converter.Date
	}{
		{"01/11/2015", converter.Date{Year: 2015, Month: 11, Day: 1}},
		{"31/12/2000", converter.Date{Year: 2000, Month: 12, Day: 31}},
		{"29/02/2016", converter.Date{Year: 2016, Month: 2, Day: 29}},
		{"28/02/2017", converter.Date{Year: 2017, Month: 2, Day: 28}},
		{"30/04/2019", converter.Date{Year: 2019, Month: 4, Day: 30}},
	}

	for _, value := range values {
		date, err := converter.NormalizeDate(value.value)
		assert.NoError(err)
		assert.Equal(value.expected, date)
		assert.False(date.IsLatest())
	}
}

func TestNormalizeDateEmptyMeansLatest(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	date, err := converter.NormalizeDate("")

	assert.NoError(err)
	assert.True(date.IsLatest())
	assert.Equal("latest", date.String())
}

func TestNormalizeDateInvalidFallsBackToLatest(t *testing.T) {
	t.Parallel()
	assert := require.New(t)
	currentYear := time.Now().Year()

	values := []string{
		"1/11/2015",       // wrong length
		"01-11-2015",      // wrong delimiter
		"abcdefghij",      // not numbers
		"0a/11/2015",      // day not a number
		"01/b1/2015",      // month not a number
		"01/11/20c5",      // year not a number
		"01/11/1999",      // year below 2000
		fmt.Sprintf("01/11/%d", currentYear+1),
		"01/13/2015",      // month out of range
		"01/00/2015",      // month out of range
		"00/11/2015",      // day out of range
		"32/01/2015",      // day out of range
		"30/02/2015",      // February 30th
		"29/02/2015",      // non-leap February 29th
		"31/04/2015",      // April 31st
		"31/11/2015",      // November 31st
		fmt.Sprintf("29/02/%d", currentYear), // current year excluded from leap rule
	}

	for _, value := range values {
		date, err := converter.NormalizeDate(value)
		assert.Error(err, "expected %q to be invalid", value)
		assert.True(errors.Is(err, converter.ErrInvalidDate))
		assert.True(date.IsLatest())
	}
}

func TestDateISO(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	date, err := converter.NormalizeDate("01/11/2015")

	assert.NoError(err)
	assert.Equal("2015-11-01", date.ISO())
	assert.Equal("2015-11-01", date.String())
}
