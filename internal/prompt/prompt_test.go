package prompt

import (
	"bytes"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInt(t *testing.T) {
	testCases := []struct {
		name       string
		input      string
		def, floor int
		expected   int
		wantOutput []string
	}{
		{"empty_takes_default", "\n", 10, 1, 10, nil},
		{"whitespace_takes_default", "   \n", 7, 1, 7, nil},
		{"valid_value", "25\n", 10, 1, 25, nil},
		{"value_at_floor", "0\n", 10, 0, 0, nil},
		{"padded_value", "  42 \n", 10, 1, 42, nil},
		{"invalid_then_valid", "abc\n12\n", 10, 1, 12, []string{"Please enter a valid integer"}},
		{"float_rejected", "1.5\n3\n", 10, 1, 3, []string{"Please enter a valid integer"}},
		{"below_floor_then_valid", "0\n5\n", 10, 1, 5, []string{"Please enter a value not less than 1"}},
		{"negative_below_zero_floor", "-3\n\n", 10, 0, 10, []string{"Please enter a value not less than 0"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			p := New(strings.NewReader(tc.input), &out)

			got, err := p.Int("Enter number of rows", tc.def, tc.floor)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
			assert.Contains(t, out.String(), "Enter number of rows [default "+strconv.Itoa(tc.def)+"]: ")
			for _, want := range tc.wantOutput {
				assert.Contains(t, out.String(), want)
			}
		})
	}
}

func TestInt_EndOfInput(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("nope\n"), &out)

	_, err := p.Int("Enter number of rows", 10, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoInput), "got %v", err)
	assert.Equal(t, 2, strings.Count(out.String(), "Enter number of rows"), "prompt should repeat once before EOF")
}

func TestInt_OversizedLine(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader(strings.Repeat("9x", 35000)+"\n7\n"), &out)

	got, err := p.Int("Enter number of rows", 10, 1)
	require.NoError(t, err)
	assert.Equal(t, 7, got)
	assert.Contains(t, out.String(), "Please enter a valid integer")
}

func TestInt_LineEndings(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected int
	}{
		{"no_trailing_newline", "15", 15},
		{"crlf", "16\r\n", 16},
		{"crlf_empty_takes_default", "\r\n", 10},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := New(strings.NewReader(tc.input), &out).Int("Enter number of rows", 10, 1)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestCollect(t *testing.T) {
	defaults := Values{Rows: 10, Cols: 10, Min: 10, Max: 100}

	testCases := []struct {
		name       string
		input      string
		expected   Values
		reprompts  int
		wantOutput string
	}{
		{
			name:     "all_defaults",
			input:    "\n\n\n\n",
			expected: Values{Rows: 10, Cols: 10, Min: 10, Max: 100},
		},
		{
			name:     "all_custom",
			input:    "4\n6\n0\n9\n",
			expected: Values{Rows: 4, Cols: 6, Min: 0, Max: 9},
		},
		{
			name:       "max_equal_to_min",
			input:      "2\n2\n50\n50\n80\n",
			expected:   Values{Rows: 2, Cols: 2, Min: 50, Max: 80},
			reprompts:  1,
			wantOutput: "Maximum value must be greater than minimum value 50",
		},
		{
			name:       "default_max_below_min",
			input:      "\n\n200\n\n150\n300\n",
			expected:   Values{Rows: 10, Cols: 10, Min: 200, Max: 300},
			reprompts:  2,
			wantOutput: "Maximum value must be greater than minimum value 200",
		},
		{
			name:       "invalid_during_reprompt",
			input:      "1\n1\n5\n3\nx\n6\n",
			expected:   Values{Rows: 1, Cols: 1, Min: 5, Max: 6},
			reprompts:  1,
			wantOutput: "Please enter a valid integer",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := New(strings.NewReader(tc.input), &out).Collect(defaults)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
			assert.Equal(t, tc.reprompts, strings.Count(out.String(), "Maximum value must be greater"))
			if tc.wantOutput != "" {
				assert.Contains(t, out.String(), tc.wantOutput)
			}
		})
	}
}

func TestCollect_EndOfInputDuringReprompt(t *testing.T) {
	var out bytes.Buffer
	_, err := New(strings.NewReader("1\n1\n10\n5\n"), &out).Collect(Values{Rows: 1, Cols: 1, Min: 0, Max: 100})
	require.ErrorIs(t, err, ErrNoInput)
	assert.Contains(t, out.String(), "Re-enter maximum value [default 100]: ")
}
