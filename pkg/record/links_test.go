package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRelaisSearchPrefersISBN(t *testing.T) {
	rec := &FlatRecord{
		Title: "Moby Dick",
		ISBN:  []string{"0-306-40615-2"},
		ISSN:  []string{"0040-781X"},
	}
	assert.Equal(t, "isbn=9780306406157", RelaisSearch(rec))
}

func TestRelaisSearchKeepsISBN13(t *testing.T) {
	rec := &FlatRecord{ISBN: []string{"978-0-14-243724-7"}}
	assert.Equal(t, "isbn=9780142437247", RelaisSearch(rec))
}

func TestRelaisSearchFallsBackToISSN(t *testing.T) {
	rec := &FlatRecord{Title: "Time", ISSN: []string{"0040-781X"}}
	assert.Equal(t, "issn=0040-781X", RelaisSearch(rec))
}

func TestRelaisSearchTitleAuthor(t *testing.T) {
	rec := &FlatRecord{Title: "Moby Dick", Author: ptr("Melville, Herman")}
	assert.Equal(t, `ti="Moby Dick" and au="Melville, Herman"`, RelaisSearch(rec))

	rec.Author = nil
	assert.Equal(t, `ti="Moby Dick"`, RelaisSearch(rec))
}

func TestDLLFormPath(t *testing.T) {
	assert.Equal(t, "DLL_storagerequest.php", DLLFormPath("law"))
	assert.Equal(t, "paging.php", DLLFormPath("stor"))
	assert.Equal(t, "search-template.php", DLLFormPath(""))
	assert.Equal(t, "search-template.php", DLLFormPath("other"))
}
