// Package document holds the root of a Dash view tree and moves it to and
// from JSON.
//
// # Loading and Saving
//
// [Document.Load] parses bytes as a JSON object and decodes it through a
// [view.Registry]. A failed load returns the error and leaves the previous
// tree in place, so an editor can keep showing the last good document:
//
//	doc := document.New()
//	if err := doc.Load(data); err != nil {
//	    var mk *dict.MissingKeyError
//	    if errors.As(err, &mk) {
//	        // report mk.Key
//	    }
//	}
//	out, err := doc.Save()
//
// # Bundles
//
// On disk a document is either a plain JSON file or a bundle: a directory,
// usually named *.dash, holding contents.json. [ReadFile] and [WriteFile]
// accept both forms. Writing a bundle only touches contents.json.
//
// [view.Registry]: github.com/dashdoc/dash/pkg/view#Registry
package document
