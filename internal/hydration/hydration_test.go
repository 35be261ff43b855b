package hydration

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/desertwitch/fstree/internal/schema"
	"github.com/desertwitch/fstree/internal/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockOS struct {
	mock.Mock
}

func (m *mockOS) Open(name string) (*os.File, error) {
	args := m.Called(name)
	f, _ := args.Get(0).(*os.File)

	return f, args.Error(1)
}

const importFixture = `* dir1 C:
* dir2 C:/dir1
file1 C:
file2	C:/dir1/dir2

* dir6   C:
file3 C:/dir1
`

// TestParseLine_Table tests decoding of single lines.
func TestParseLine_Table(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		line     string
		expected Record
		err      error
	}{
		{"Success_File", "file1 C:/dir1", Record{"file1", schema.KindFile, "C:/dir1"}, nil},
		{"Success_Directory", "* dir1 C:", Record{"dir1", schema.KindDirectory, "C:"}, nil},
		{"Success_WhitespaceRuns", "*\t dir1 \t C:/a  ", Record{"dir1", schema.KindDirectory, "C:/a"}, nil},
		{"Success_MarkerWithoutSpace", "*dir1 C:", Record{"dir1", schema.KindDirectory, "C:"}, nil},
		{"Success_CarriageReturn", "file1 C:\r", Record{"file1", schema.KindFile, "C:"}, nil},
		{"Fail_Blank", "   ", Record{}, ErrBlankLine},
		{"Fail_MissingPath", "file1", Record{}, ErrMalformedRecord},
		{"Fail_MarkerOnly", "*", Record{}, ErrMalformedRecord},
		{"Fail_DirectoryMissingPath", "* dir1", Record{}, ErrMalformedRecord},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rec, err := ParseLine(tc.line)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, rec)
		})
	}
}

// TestRecord_String tests the line form of records.
func TestRecord_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "* dir1 C:", Record{"dir1", schema.KindDirectory, "C:"}.String())
	assert.Equal(t, "file1 C:/dir1", Record{"file1", schema.KindFile, "C:/dir1"}.String())
}

// TestDecode_Success tests decoding of a complete source.
func TestDecode_Success(t *testing.T) {
	t.Parallel()

	records, lineErrs, err := Decode(strings.NewReader(importFixture))

	require.NoError(t, err)
	assert.Empty(t, lineErrs)
	require.Len(t, records, 6)
	assert.Equal(t, Record{"dir1", schema.KindDirectory, "C:"}, records[0])
	assert.Equal(t, Record{"file2", schema.KindFile, "C:/dir1/dir2"}, records[3])
	assert.Equal(t, Record{"dir6", schema.KindDirectory, "C:"}, records[4])
}

// TestDecode_MalformedLines tests that malformed lines are skipped and
// reported with their line number.
func TestDecode_MalformedLines(t *testing.T) {
	t.Parallel()

	src := "* dir1 C:\nbroken\nfile1 C:/dir1\n*\n"

	records, lineErrs, err := Decode(strings.NewReader(src))

	require.NoError(t, err)
	assert.Len(t, records, 2)
	require.Len(t, lineErrs, 2)

	var lineErr *LineError
	require.ErrorAs(t, lineErrs[0], &lineErr)
	assert.Equal(t, 2, lineErr.Line)
	require.ErrorIs(t, lineErrs[0], ErrMalformedRecord)

	require.ErrorAs(t, lineErrs[1], &lineErr)
	assert.Equal(t, 4, lineErr.Line)
	assert.Contains(t, lineErrs[1].Error(), "line 4")
}

// TestReplay_ContinuesOnFailure tests that failing records never abort the
// replay.
func TestReplay_ContinuesOnFailure(t *testing.T) {
	t.Parallel()

	records := []Record{
		{"dir1", schema.KindDirectory, "C:"},
		{"file1", schema.KindFile, "C:/missing"},
		{"dir1", schema.KindDirectory, "C:"},
		{"file2", schema.KindFile, "C:/dir1"},
		{tree.RootName, schema.KindDirectory, "C:"},
	}

	tr := tree.New()
	report := Replay(tr, records)

	assert.Equal(t, 2, report.Created)
	require.Len(t, report.Failed, 3)
	require.ErrorIs(t, report.Failed[0], tree.ErrPathNotFound)
	require.ErrorIs(t, report.Failed[1], schema.ErrDuplicateName)
	require.ErrorIs(t, report.Failed[2], tree.ErrRootName)

	_, ok := tr.Resolve("C:/dir1/file2")
	assert.True(t, ok)
	assert.Equal(t, tree.Stats{Directories: 1, Files: 1}, tr.Stats())
}

// TestLoad_Success tests loading an import file from disk.
func TestLoad_Success(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(importFixture+"oops\nfile9 C:/nope\n"), 0o600))

	h := NewHandler(&schema.OS{})
	tr, report, err := h.Load(path)

	require.NoError(t, err)
	require.NotNil(t, tr)
	assert.Equal(t, 6, report.Created)
	require.Len(t, report.Failed, 2)
	require.ErrorIs(t, report.Failed[0], ErrMalformedRecord)
	require.ErrorIs(t, report.Failed[1], tree.ErrPathNotFound)
	assert.Equal(t, tree.Stats{Directories: 3, Files: 3}, tr.Stats())
}

// TestLoad_Unreadable tests that an unreadable source is fatal.
func TestLoad_Unreadable(t *testing.T) {
	t.Parallel()

	osMock := new(mockOS)
	osMock.On("Open", "/nonexistent/input.txt").Return(nil, os.ErrNotExist)

	h := NewHandler(osMock)
	tr, report, err := h.Load("/nonexistent/input.txt")

	require.Error(t, err)
	require.ErrorIs(t, err, ErrSourceUnreadable)
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.Nil(t, tr)
	assert.Empty(t, report.Failed)

	osMock.AssertExpectations(t)
}
