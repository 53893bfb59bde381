package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseMap_UnmarshalKeepsDocumentOrder(t *testing.T) {
	var m ResponseMap
	require.NoError(t, json.Unmarshal([]byte(`{"30": 1, "10": 2, "20": 3}`), &m))
	assert.Equal(t, ResponseMap{
		{QuestionID: "30", OptionID: 1},
		{QuestionID: "10", OptionID: 2},
		{QuestionID: "20", OptionID: 3},
	}, m)

	out, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"30": 1, "10": 2, "20": 3}`, string(out))
	assert.Equal(t, `{"30":1,"10":2,"20":3}`, string(out))
}

func TestResponseMap_UnmarshalNullAndEmpty(t *testing.T) {
	var m ResponseMap
	require.NoError(t, json.Unmarshal([]byte(`null`), &m))
	assert.Nil(t, m)

	require.NoError(t, json.Unmarshal([]byte(`{}`), &m))
	assert.NotNil(t, m)
	assert.Empty(t, m)
}

func TestResponseMap_UnmarshalRejectsNonObject(t *testing.T) {
	var m ResponseMap
	assert.Error(t, json.Unmarshal([]byte(`[1, 2]`), &m))
	assert.Error(t, json.Unmarshal([]byte(`{"1": "x"}`), &m))
}

func TestResponseMap_UnmarshalRejectsNullOption(t *testing.T) {
	var m ResponseMap
	err := json.Unmarshal([]byte(`{"4": 1, "5": null}`), &m)
	assert.ErrorContains(t, err, `question "5": missing option id`)
	assert.Nil(t, m)
}

func TestQuizDetail_Question(t *testing.T) {
	q := QuizDetail{Questions: []Question{{ID: 5, Description: "five"}}}

	got, ok := q.Question(5)
	require.True(t, ok)
	assert.Equal(t, "five", got.Description)

	_, ok = q.Question(6)
	assert.False(t, ok)
}
