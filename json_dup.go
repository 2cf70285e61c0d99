package courier

import (
	"bytes"
	"io"

	eng "github.com/reoring/courier/internal/engine"
)

// DuplicateKeys lists every repeated object key in data without failing on
// the first one. Syntax errors are returned as Issues.
func DuplicateKeys(data []byte) (Issues, error) {
	return DuplicateKeysReader(bytes.NewReader(data))
}

// DuplicateKeysReader is DuplicateKeys over an io.Reader.
func DuplicateKeysReader(r io.Reader) (Issues, error) {
	var found []eng.SimpleIssue
	src := eng.WrapWithEnforcement(newTokenSource(r), eng.EnforceOptions{
		OnDuplicate: eng.DupWarn,
		IssueSink:   func(si eng.SimpleIssue) { found = append(found, si) },
	})
	if _, err := eng.Decode(src); err != nil {
		return nil, engineIssues(err)
	}
	return fromEngineIssues(found), nil
}

func fromEngineIssues(si []eng.SimpleIssue) Issues {
	var iss Issues
	for _, s := range si {
		iss = AppendIssues(iss, Issue{Code: s.Code, Path: s.Path, Message: s.Message})
	}
	return iss
}
