package media

import (
	"path/filepath"
	"strings"
)

var mimeByExt = map[string]string{
	".mp3": "audio/mpeg",
	".wav": "audio/wav",
	".oga": "audio/ogg",
	".ogg": "audio/ogg",
	".m4a": "audio/mp4",
	".aac": "audio/aac",
}

// MIMEForFile returns the MIME hint for an audio file based on its
// extension. Unknown extensions default to audio/mpeg.
func MIMEForFile(path string) string {
	if mime, ok := mimeByExt[strings.ToLower(filepath.Ext(path))]; ok {
		return mime
	}
	return "audio/mpeg"
}
