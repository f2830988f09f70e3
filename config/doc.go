/*
Package config loads filestore runtime configuration.

Sources are applied in order, later ones winning:
  - Default() values (file backend at file.json, console logging at info)
  - a YAML file passed to Load
  - a .env file in the working directory, if present
  - environment variables (FILESTORE_BACKEND, FILESTORE_FILE_PATH,
    FILESTORE_DDB_TABLE, FILESTORE_SQLITE_PATH, LOG_LEVEL, ...)

Example YAML:

	backend: dynamodb
	dynamodb:
	  region: us-east-1
	  table: filestore
	  endpoint: http://localhost:8000
	log:
	  level: debug
	  format: json
*/
package config
