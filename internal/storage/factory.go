package storage

import (
	"log"
	"os"
)

func MakeStore(dir string) (Store, error) {
	if _, ok := os.LookupEnv("AZURE_STORAGE_ACCOUNT_NAME"); ok {
		log.Println("Using Azure Blob Storage for collections")
		return NewBlobStore("collections")
	}

	return NewFileStore(dir), nil
}
