// Package minio uploads run reports to an S3-compatible bucket.
//
// NewClient connects with static credentials and creates the bucket when it
// is missing. Put and Get address objects inside that bucket.
//
//	client, err := minio.NewClient(ctx, minio.Config{
//		Connection: minio.ConnectionConfig{
//			Endpoint:        "localhost:9000",
//			AccessKeyID:     "minioadmin",
//			SecretAccessKey: "minioadmin",
//			BucketName:      "hammer-reports",
//		},
//	}, log)
//	if err != nil {
//		return err
//	}
//	_, err = client.Put(ctx, "runs/ingest.json", bytes.NewReader(body), "application/json", int64(len(body)))
package minio
