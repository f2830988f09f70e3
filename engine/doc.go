/*
Package engine implements the filestore storage engine.

The Engine keeps every live entity in a map keyed by "<type>.<id>" and persists
that map as one JSON document through a datastore.DocumentStore:

	eng := engine.New(file.New("file.json"), models.NewRegistry())
	if err := eng.Reload(ctx); err != nil {
	    return err
	}

	u := model.New("User")
	eng.New(u)              // visible in eng.All() immediately
	err := eng.Save(ctx)    // whole-document write

Reload is all-or-nothing: the document is decoded and every record rehydrated
through the type registry before any of them enters the live map. Reload never
touches timestamps; only SaveEntity and Update do.

An Engine is built once by whatever composes the system and passed to its
consumers. There is no package-level instance.
*/
package engine
