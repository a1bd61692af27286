package logging

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"go.viam.com/test"
)

type BasicStruct struct {
	X int
	y string
	z string
}

type User struct {
	Name string
}

type StructWithStruct struct {
	x int
	Y User
	z string
}

// assertLogMatches will fuzzy match log lines. Notably, this checks the time format, but ignores
// the exact time. And it expects a match on the filename, but the exact line number can be wrong.
func assertLogMatches(t *testing.T, actual *bytes.Buffer, expected string) {
	t.Helper()

	output, err := actual.ReadString('\n')
	test.That(t, err, test.ShouldBeNil)

	actualTrimmed := strings.TrimSuffix(output, "\n")
	actualParts := strings.Split(actualTrimmed, "\t")
	expectedParts := strings.Split(expected, "\t")
	// Use the length of the first string as a weak verification of checking that the result looks like a date.
	test.That(t, len(actualParts[0]), test.ShouldEqual, len(expectedParts[0]))
	// Log level.
	test.That(t, actualParts[1], test.ShouldEqual, expectedParts[1])

	// Filename:line_number.
	actualFilename, actualLineNumber, found := strings.Cut(actualParts[2], ":")
	test.That(t, found, test.ShouldBeTrue)
	expectedFilename, _, found := strings.Cut(expectedParts[2], ":")
	test.That(t, found, test.ShouldBeTrue)
	test.That(t, actualFilename, test.ShouldEqual, expectedFilename)
	_, err = strconv.Atoi(actualLineNumber)
	test.That(t, err, test.ShouldBeNil)

	// Log message.
	test.That(t, actualParts[3], test.ShouldEqual, expectedParts[3])

	test.That(t, len(actualParts), test.ShouldEqual, len(expectedParts))
	if len(actualParts) == 4 {
		return
	}

	// JSON encoding of maps can be unpredictable because map iteration order can change between
	// runs. Parse the output into maps and assert on map equality.
	expectedMap := make(map[string]any)
	err = json.Unmarshal([]byte(expectedParts[4]), &expectedMap)
	test.That(t, err, test.ShouldBeNil)

	actualMap := make(map[string]any)
	err = json.Unmarshal([]byte(actualParts[4]), &actualMap)
	test.That(t, err, test.ShouldBeNil)

	test.That(t, actualMap, test.ShouldResemble, expectedMap)
}

func newBufferLogger(level Level) (*impl, *bytes.Buffer) {
	notStdout := &bytes.Buffer{}
	return &impl{"", NewAtomicLevelAt(level), false, []Appender{NewWriterAppender(notStdout)}}, notStdout
}

func TestConsoleOutputFormat(t *testing.T) {
	impl, notStdout := newBufferLogger(DEBUG)

	impl.Info("impl Info log")
	assertLogMatches(t, notStdout,
		`2023-10-30T09:12:09.459-0400	INFO	logging/impl_test.go:67	impl Info log`)

	impl.Infof("impl %s log", "infof")
	assertLogMatches(t, notStdout,
		`2023-10-30T09:45:20.764-0400	INFO	logging/impl_test.go:131	impl infof log`)

	impl.Infow("impl logw", "key", "value")
	assertLogMatches(t, notStdout,
		`2023-10-30T13:19:45.806-0400	INFO	logging/impl_test.go:132	impl logw	{"key":"value"}`)

	impl.Infow("StructWithStruct", "key", "val", "StructWithStruct", StructWithStruct{1, User{"alice"}, "foo"})
	assertLogMatches(t, notStdout,
		`2023-10-30T13:20:47.129-0400	INFO	logging/impl_test.go:123	StructWithStruct	{"StructWithStruct":{"Y":{"Name":"alice"}},"key":"val"}`)

	impl.Infow("BasicStruct", "implOneKey", "1val", "BasicStruct", BasicStruct{1, "alice", "foo"})
	assertLogMatches(t, notStdout,
		`2023-10-30T13:20:47.129-0400	INFO	logging/impl_test.go:125	BasicStruct	{"BasicStruct":{"X":1},"implOneKey":"1val"}`)

	impl.Debugw("unpaired", "lonely")
	assertLogMatches(t, notStdout,
		`2023-10-30T13:20:47.129-0400	DEBUG	logging/impl_test.go:125	unpaired	{"lonely":"unpaired log key"}`)
}

func TestLevelFiltering(t *testing.T) {
	impl, notStdout := newBufferLogger(WARN)

	impl.Debug("dropped")
	impl.Infof("dropped %d", 1)
	test.That(t, notStdout.Len(), test.ShouldEqual, 0)

	impl.Warn("kept")
	assertLogMatches(t, notStdout,
		`2023-10-30T09:12:09.459-0400	WARN	logging/impl_test.go:67	kept`)

	impl.SetLevel(ERROR)
	test.That(t, impl.GetLevel(), test.ShouldEqual, ERROR)
	impl.Warnw("dropped", "key", "value")
	test.That(t, notStdout.Len(), test.ShouldEqual, 0)

	impl.Errorf("kept %s", "error")
	assertLogMatches(t, notStdout,
		`2023-10-30T09:12:09.459-0400	ERROR	logging/impl_test.go:67	kept error`)
}

func TestSublogger(t *testing.T) {
	notStdout := &bytes.Buffer{}
	parent := &impl{"latch", NewAtomicLevelAt(INFO), true, []Appender{NewWriterAppender(notStdout)}}
	child := parent.Sublogger("dispatch")
	test.That(t, child.GetLevel(), test.ShouldEqual, INFO)

	child.Info("hello")
	line, err := notStdout.ReadString('\n')
	test.That(t, err, test.ShouldBeNil)
	parts := strings.Split(strings.TrimSuffix(line, "\n"), "\t")
	test.That(t, parts, test.ShouldHaveLength, 5)
	test.That(t, parts[2], test.ShouldEqual, "latch.dispatch")
	test.That(t, parts[4], test.ShouldEqual, "hello")

	// Levels are copied, not shared.
	child.SetLevel(ERROR)
	test.That(t, parent.GetLevel(), test.ShouldEqual, INFO)
}

func TestObservedTestLogger(t *testing.T) {
	logger, logs := NewObservedTestLogger(t)
	logger.Debugw("workers chosen", "count", 4)
	logger.Infof("filtered %d keypoints", 12)

	test.That(t, logs.Len(), test.ShouldEqual, 2)
	test.That(t, logs.FilterMessage("workers chosen").Len(), test.ShouldEqual, 1)
	test.That(t, logs.FilterMessageSnippet("filtered").Len(), test.ShouldEqual, 1)
	test.That(t, logs.All()[0].ContextMap()["count"], test.ShouldEqual, int64(4))
	test.That(t, logger.Sync(), test.ShouldBeNil)
}

func TestLevelFromString(t *testing.T) {
	for _, tc := range []struct {
		in       string
		expected Level
	}{
		{"debug", DEBUG},
		{"INFO", INFO},
		{"Warning", WARN},
		{"error", ERROR},
	} {
		t.Run(tc.in, func(t *testing.T) {
			level, err := LevelFromString(tc.in)
			test.That(t, err, test.ShouldBeNil)
			test.That(t, level, test.ShouldEqual, tc.expected)
			test.That(t, strings.ToLower(level.String()), test.ShouldStartWith, strings.ToLower(tc.in)[:4])
		})
	}

	_, err := LevelFromString("loud")
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, fmt.Sprintf("%q", "loud"))
}
