/*
Package ddb provides a DynamoDB implementation of the DocumentStore interface.

The DynamodbDataStore supports:
  - Single-table design: the document is one item tagged EntityType=FileStoreDocument
  - Macro-based key expansion (e.g., "FILESTORE#{Name}")
  - Single-object keys where PK and SK are identical
  - Consistent reads, and whole-item replacement through PutItem

Key Features:

Macro Expansion:
The item key is built from a template whose macros are replaced with the
document name:

	store := ddb.NewWithClient(client, "my-table", "file.json", "FILESTORE#{Name}")
	// PK = SK = "FILESTORE#file.json"

Client:
NewDynamodbDataStore loads the AWS configuration for the region, with static
credentials when both keys are set, and an optional endpoint override for
DynamoDB Local:

	store, err := ddb.NewDynamodbDataStore(ctx, ddb.Options{
	    Region:   "us-east-1",
	    Table:    "filestore",
	    Endpoint: "http://localhost:8000",
	})

For usage examples, see the integration tests.
*/
package ddb
