// Copyright © 2026 The golox authors

package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocCommand_DefaultFlags(t *testing.T) {
	assert.Equal(t, "doc [flags] TOPIC", docCmd.Use)
	assert.NotNil(t, docCmd.Flags().Lookup("list-topics"))
}

func TestGuideTopics(t *testing.T) {
	topics := guideTopics()
	require.NotEmpty(t, topics)
	names := make([]string, len(topics))
	for i, topic := range topics {
		assert.NotEmpty(t, topic.name)
		assert.NotEmpty(t, topic.body)
		names[i] = topic.name
	}
	assert.Contains(t, names, "values")
	assert.Contains(t, names, "operators")
	assert.Contains(t, names, "closures")
	assert.Contains(t, names, "repl")
}

func TestRenderTopicList(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderTopicList(&buf))
	assert.Contains(t, buf.String(), "control-flow\n")
}

func TestRenderTopic(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderTopic(&buf, "closures"))
	out := buf.String()
	assert.Contains(t, out, "closures\n\n")
	assert.Contains(t, out, "  A function captures")
}

func TestRenderTopicUnknown(t *testing.T) {
	var buf bytes.Buffer
	err := renderTopic(&buf, "fnord")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fnord")
	assert.Zero(t, buf.Len())
}
