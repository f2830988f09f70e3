/*
Package datastore defines the persistence interface behind the filestore engine.

The main interface is DocumentStore, which moves one encoded snapshot of the whole
registry in and out of a backing medium:

	type DocumentStore interface {
	    Load(ctx context.Context) ([]byte, error)
	    Store(ctx context.Context, data []byte) error
	    Location() string
	}

Implementations:
  - file: JSON file replaced through a temp file and rename (default)
  - ddb: single DynamoDB item holding the document
  - sqlite: one row of a documents table (modernc.org/sqlite)
  - mock: in-memory bytes with error injection, for testing

Backends never decode the document. Encoding, decoding and type resolution
belong to the engine, so every backend shares the same whole-document semantics.
*/
package datastore
