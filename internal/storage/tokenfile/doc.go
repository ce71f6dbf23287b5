// Package tokenfile persists the token table as a JSON document.
//
// File format:
//
//	{
//	    "5f4dcc3b5aa765d61d8327deb882cf99": {
//	        "expire": 1767225600,
//	        "nameClient": "Acme"
//	    }
//	}
//
// Keys keep the order found in the file. Records are validated field by
// field on load: unusable records are skipped and fixable fields are
// defaulted, each reported as an Issue. Saves go through a temp file and
// an atomic rename.
//
//   - codec.go: JSON decoding with validation, and pretty-printed encoding
//   - store.go: file load/save
//   - watcher.go: change notifications for the token file
package tokenfile
