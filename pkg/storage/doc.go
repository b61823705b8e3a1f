// Package storage reads and writes the inputs and outputs of a dictionary
// build.
//
// Two backends implement Storage:
//
//   - LocalStorage keeps files below a base directory and rejects paths that
//     escape it. Writes are atomic (temporary file plus rename).
//   - S3Storage keeps objects in an S3 or S3-compatible bucket under an
//     optional key prefix, using aws-sdk-go-v2.
//
// New picks the backend from Config.Driver:
//
//	store, err := storage.New(ctx, storage.Config{Driver: storage.DriverLocal, BaseDir: "."})
//	raw, err := store.Read(ctx, "data/adj.txt")
//
// Missing files are reported as ErrFileNotFound by both backends. S3 API
// errors are classified into ErrBucketNotFound, ErrAccessDenied and the other
// sentinels in errors.go.
package storage
