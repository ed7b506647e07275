package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
)

// BlobStore persists collections to an Azure Blob container so a deployment
// can survive pod restarts without a disk.
type BlobStore struct {
	containerClient *azblob.Client
	container       string
}

var _ Store = (*BlobStore)(nil)

func NewBlobStore(container string) (*BlobStore, error) {
	accountName, ok := os.LookupEnv("AZURE_STORAGE_ACCOUNT_NAME")
	if !ok {
		return nil, fmt.Errorf("AZURE_STORAGE_ACCOUNT_NAME could not be found")
	}

	accountKey, ok := os.LookupEnv("AZURE_STORAGE_PRIMARY_ACCOUNT_KEY")
	if !ok {
		return nil, fmt.Errorf("AZURE_STORAGE_PRIMARY_ACCOUNT_KEY could not be found")
	}

	cred, err := azblob.NewSharedKeyCredential(accountName, accountKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create shared key credential: %w", err)
	}

	client, err := azblob.NewClientWithSharedKeyCredential(fmt.Sprintf("https://%s.blob.core.windows.net/", accountName), cred, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create blob client: %w", err)
	}

	return &BlobStore{
		containerClient: client,
		container:       container,
	}, nil
}

func (bs *BlobStore) Get(key string) (string, bool) {
	stream, err := bs.containerClient.DownloadStream(context.TODO(), bs.container, key, &azblob.DownloadStreamOptions{})
	if err != nil {
		if !bloberror.HasCode(err, bloberror.BlobNotFound) {
			log.Printf("failed to download blob %s: %v", key, err)
		}
		return "", false
	}
	defer stream.Body.Close()

	data, err := io.ReadAll(stream.Body)
	if err != nil {
		log.Printf("failed to read blob %s: %v", key, err)
		return "", false
	}
	return string(data), true
}

func (bs *BlobStore) Set(key, value string) error {
	_, err := bs.containerClient.UploadStream(context.TODO(), bs.container, key, strings.NewReader(value), &azblob.UploadStreamOptions{})
	return err
}
