// Package sessionfile persists named sessions as a single JSON document.
//
// The whole file is read before every operation and rewritten after
// every mutation:
//
//	{
//	    "work": {
//	        "last_updated": "2024/06/01 09:30:00",
//	        "windows": [["https://a.example/", "https://b.example/"]]
//	    }
//	}
//
// There is no locking; concurrent writers race and the last one wins.
package sessionfile
