/*
Package filestore is a small object store that keeps every entity of a closed
set of types in memory and persists the whole set as one JSON document.

Entities are keyed "<type>.<id>" and carry an id, created_at and updated_at plus
free-form attributes. Each save rewrites the complete document; each reload
admits either the whole document or nothing of it.

The document can live in a local file (the default), a DynamoDB item, a SQLite
row, or memory. The backend is chosen through the config package.

Basic Usage:

	cfg, _ := config.Load("filestore.yaml")
	svc, closeFn, err := filestore.Open(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeFn()

	id, _ := svc.Create(ctx, "User")
	_ = svc.Update(ctx, "User", id, "email", "airbnb@mail.com")
	user, found, _ := svc.Show("User", id)
*/
package filestore
