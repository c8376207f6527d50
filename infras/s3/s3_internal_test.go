package s3

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectKey(t *testing.T) {
	assert.Equal(t, "fines/b-1/ticket.pdf", ObjectKey(DirectoryFines, "b-1", "ticket.pdf"))
	assert.Equal(t, "fines/b-1/passwd", ObjectKey(DirectoryFines, "b-1", "../../etc/passwd"))
}

func TestKeyFromURL(t *testing.T) {
	const (
		public   = "https://files.example.com"
		endpoint = "https://s3.example.com"
	)

	assert.Equal(t, "fines/b-1/a.pdf", keyFromURL(public, endpoint, "rentdesk", "https://files.example.com/fines/b-1/a.pdf"))
	assert.Equal(t, "fines/b-1/a.pdf", keyFromURL(public, endpoint, "rentdesk", "https://s3.example.com/rentdesk/fines/b-1/a.pdf"))
	assert.Equal(t, "", keyFromURL(public, endpoint, "rentdesk", "https://elsewhere.example.com/a.pdf"))
	assert.Equal(t, "", keyFromURL("", "", "", "/a.pdf"))
}
