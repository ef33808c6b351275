package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsLikelyEntryPoint(t *testing.T) {
	tests := []struct {
		filename string
		want     bool
	}{
		{"index.php", true},
		{"INDEX.PHP", true},
		{"main.php", true},
		{"bootstrap.php", true},
		{"index_en.php", true},
		{"main_admin.php", true},
		{"user_controller.php", true},
		{"router.php", true},
		{"header.php", false},
		{"UserModel.php", false},
		{"api_handler.php", false},
		{"ajax_save.php", false},
		{"DatabaseClass.php", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, isLikelyEntryPoint(tt.filename), "filename %q", tt.filename)
	}
}

func TestEntryPoints(t *testing.T) {
	files := []string{
		"/site/index.php",
		"/site/header.php",
		"/site/admin/main.php",
		"/site/inc/UserModel.php",
	}

	entries := EntryPoints(files)
	assert.Equal(t, []string{"/site/index.php", "/site/admin/main.php"}, entries)
}

func TestEntryPoints_FallbackToAll(t *testing.T) {
	// No file matches the heuristics: the caller still needs a starting
	// set, so everything is returned.
	files := []string{"/site/header.php", "/site/footer.php"}
	assert.Equal(t, files, EntryPoints(files))
}
