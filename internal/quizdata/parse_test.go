package quizdata

import (
	"encoding/json"
	"fmt"
	"strconv"
	"testing"

	"neet-rank-predictor/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeResponseMap(t *testing.T, raw string) models.ResponseMap {
	t.Helper()
	var m models.ResponseMap
	require.NoError(t, json.Unmarshal([]byte(raw), &m))
	return m
}

func TestParseResponseMap_PreservesOrder(t *testing.T) {
	got, err := ParseResponseMap(decodeResponseMap(t, `{"1": 3, "2": 4}`))
	require.NoError(t, err)
	assert.Equal(t, []models.ParsedResponse{
		{QuestionID: 1, SelectedOptionID: 3},
		{QuestionID: 2, SelectedOptionID: 4},
	}, got)

	got, err = ParseResponseMap(decodeResponseMap(t, `{"20": 1, "3": 2, "100": 3}`))
	require.NoError(t, err)
	assert.Equal(t, []int{20, 3, 100}, []int{got[0].QuestionID, got[1].QuestionID, got[2].QuestionID})
}

func TestParseResponseMap_Idempotent(t *testing.T) {
	m := decodeResponseMap(t, `{"7": 70, "8": 80}`)

	first, err := ParseResponseMap(m)
	require.NoError(t, err)
	second, err := ParseResponseMap(m)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestParseResponseMap_SizePreserved(t *testing.T) {
	for _, n := range []int{0, 1, 5, 50} {
		t.Run(strconv.Itoa(n), func(t *testing.T) {
			m := make(models.ResponseMap, 0, n)
			for i := 0; i < n; i++ {
				m = append(m, models.ResponseEntry{QuestionID: strconv.Itoa(i), OptionID: int64(i * 10)})
			}
			got, err := ParseResponseMap(m)
			require.NoError(t, err)
			assert.Len(t, got, n)
		})
	}
}

func TestParseResponseMap_MalformedKey(t *testing.T) {
	tests := []string{"abc", "1.5", "", " 2"}
	for _, key := range tests {
		t.Run(fmt.Sprintf("%q", key), func(t *testing.T) {
			m := models.ResponseMap{
				{QuestionID: "1", OptionID: 10},
				{QuestionID: key, OptionID: 20},
			}
			got, err := ParseResponseMap(m)
			require.Error(t, err)
			assert.Nil(t, got)

			var malformed *ErrMalformedResponse
			require.ErrorAs(t, err, &malformed)
			assert.Equal(t, key, malformed.QuestionID)
		})
	}
}
