package rename

import (
	"testing"
	"time"

	"github.com/jfmartin/renamebatch/pkg/models"
)

func candidate(name string) models.CandidateFile {
	ext := ""
	stem := name
	for i := len(name) - 1; i > 0; i-- {
		if name[i] == '.' {
			stem = name[:i]
			ext = name[i:]
			break
		}
	}
	return models.CandidateFile{
		AbsolutePath: "/photos/" + name,
		RelativePath: name,
		Dir:          "/photos",
		Stem:         stem,
		Ext:          ext,
		ModTime:      time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC),
		CreateTime:   time.Date(2023, 12, 24, 8, 0, 0, 0, time.UTC),
		CreateKind:   models.KindChange,
	}
}

func TestGenerate(t *testing.T) {
	tests := []struct {
		name    string
		rule    models.RenameRule
		file    string
		counter int
		want    string
	}{
		{
			name: "Prefix",
			rule: models.RenameRule{Prefix: "vacation_", Pattern: "*"},
			file: "beach.jpg",
			want: "vacation_beach.jpg",
		},
		{
			name: "Suffix",
			rule: models.RenameRule{Suffix: "_edited", Pattern: "*"},
			file: "beach.jpg",
			want: "beach_edited.jpg",
		},
		{
			name: "PrefixAndSuffix",
			rule: models.RenameRule{Prefix: "2024_", Suffix: "_final", Pattern: "*"},
			file: "beach.jpg",
			want: "2024_beach_final.jpg",
		},
		{
			name: "SearchReplace",
			rule: models.RenameRule{Search: "draft", Replace: "final", Pattern: "*"},
			file: "draft_report.docx",
			want: "final_report.docx",
		},
		{
			name: "SearchReplaceGlobal",
			rule: models.RenameRule{Search: "o", Replace: "0", Pattern: "*"},
			file: "foo_bar_foo.txt",
			want: "f00_bar_f00.txt",
		},
		{
			name: "SearchAnchoredStrip",
			rule: models.RenameRule{Search: "^draft_", Replace: "", Pattern: "*"},
			file: "draft_draft_notes.txt",
			want: "draft_notes.txt",
		},
		{
			name: "SearchBeforePrefix",
			rule: models.RenameRule{Prefix: "new_", Search: "new_", Replace: "", Pattern: "*"},
			file: "new_item.txt",
			want: "new_item.txt",
		},
		{
			name: "SequentialNumbering",
			rule: models.RenameRule{
				Numbering: &models.Numbering{Mode: models.NumberSequential, Start: 5, Padding: 2},
				Pattern:   "*",
			},
			file:    "whatever.txt",
			counter: 5,
			want:    "05.txt",
		},
		{
			name: "SequentialReplacesPrefixWork",
			rule: models.RenameRule{
				Prefix:    "img_",
				Numbering: &models.Numbering{Mode: models.NumberSequential, Start: 1, Padding: 3},
				Pattern:   "*",
			},
			file:    "beach.jpg",
			counter: 7,
			want:    "007.jpg",
		},
		{
			name: "AppendNumbering",
			rule: models.RenameRule{
				Prefix:    "img_",
				Numbering: &models.Numbering{Mode: models.NumberAppend, Start: 1, Padding: 3},
				Pattern:   "*",
			},
			file:    "a.txt",
			counter: 1,
			want:    "img_a_001.txt",
		},
		{
			name: "PaddingOverflowKeepsFullNumber",
			rule: models.RenameRule{
				Numbering: &models.Numbering{Mode: models.NumberSequential, Start: 1, Padding: 3},
				Pattern:   "*",
			},
			file:    "x.txt",
			counter: 12345,
			want:    "12345.txt",
		},
		{
			name: "ZeroPadding",
			rule: models.RenameRule{
				Numbering: &models.Numbering{Mode: models.NumberAppend, Start: 1, Padding: 0},
				Pattern:   "*",
			},
			file:    "x.txt",
			counter: 7,
			want:    "x_7.txt",
		},
		{
			name: "DateModifiedSuffix",
			rule: models.RenameRule{
				Date:    &models.DateInsertion{Source: models.DateModified, Position: models.PositionSuffix},
				Pattern: "*",
			},
			file: "scan.pdf",
			want: "scan_20240305.pdf",
		},
		{
			name: "DateModifiedPrefix",
			rule: models.RenameRule{
				Date:    &models.DateInsertion{Source: models.DateModified, Position: models.PositionPrefix},
				Pattern: "*",
			},
			file: "scan.pdf",
			want: "20240305_scan.pdf",
		},
		{
			name: "DateCreated",
			rule: models.RenameRule{
				Date:    &models.DateInsertion{Source: models.DateCreated, Position: models.PositionSuffix},
				Pattern: "*",
			},
			file: "scan.pdf",
			want: "scan_20231224.pdf",
		},
		{
			name: "DateAfterNumbering",
			rule: models.RenameRule{
				Numbering: &models.Numbering{Mode: models.NumberSequential, Start: 1, Padding: 3},
				Date:      &models.DateInsertion{Source: models.DateModified, Position: models.PositionPrefix},
				Pattern:   "*",
			},
			file:    "beach.jpg",
			counter: 2,
			want:    "20240305_002.jpg",
		},
		{
			name: "NoExtension",
			rule: models.RenameRule{Prefix: "x_", Pattern: "*"},
			file: "README",
			want: "x_README",
		},
		{
			name: "NoOptionsIsNoOp",
			rule: models.RenameRule{Pattern: "*"},
			file: "beach.jpg",
			want: "beach.jpg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGenerator(tt.rule)
			if err != nil {
				t.Fatalf("NewGenerator() error = %v", err)
			}
			got := g.Generate(candidate(tt.file), tt.counter)
			if got != tt.want {
				t.Errorf("Generate() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestGenerateDateCurrent(t *testing.T) {
	rule := models.RenameRule{
		Date:    &models.DateInsertion{Source: models.DateCurrent, Position: models.PositionSuffix},
		Pattern: "*",
	}
	g, err := NewGenerator(rule)
	if err != nil {
		t.Fatalf("NewGenerator() error = %v", err)
	}
	g.now = func() time.Time { return time.Date(2025, 1, 31, 23, 59, 0, 0, time.UTC) }

	got := g.Generate(candidate("note.md"), 0)
	if got != "note_20250131.md" {
		t.Errorf("Generate() = %s, want note_20250131.md", got)
	}
}

func TestNewGeneratorInvalidSearch(t *testing.T) {
	_, err := NewGenerator(models.RenameRule{Search: "(unclosed", Pattern: "*"})
	if err == nil {
		t.Error("NewGenerator() should fail for an invalid regular expression")
	}
}

func TestPadNumber(t *testing.T) {
	tests := []struct {
		n     int
		width int
		want  string
	}{
		{1, 3, "001"},
		{42, 3, "042"},
		{999, 3, "999"},
		{1000, 3, "1000"},
		{7, 0, "7"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := padNumber(tt.n, tt.width); got != tt.want {
				t.Errorf("padNumber(%d, %d) = %s, want %s", tt.n, tt.width, got, tt.want)
			}
		})
	}
}
