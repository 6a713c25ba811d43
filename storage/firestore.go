package storage

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/resumeinsight/backend/config"
	"github.com/resumeinsight/backend/models"
)

const usersCollection = "users"

// FirestoreClient wraps Firestore operations for users and analyses
type FirestoreClient struct {
	client *firestore.Client
}

// NewFirestoreClient creates a new Firestore client
func NewFirestoreClient(ctx context.Context, cfg *config.Config) (*FirestoreClient, error) {
	client, err := firestore.NewClient(ctx, cfg.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}

	return &FirestoreClient{client: client}, nil
}

// Close closes the Firestore client
func (f *FirestoreClient) Close() error {
	return f.client.Close()
}

// CreateUser creates a new user keyed by email
func (f *FirestoreClient) CreateUser(ctx context.Context, user *models.User) error {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	docRef := f.client.Collection(usersCollection).Doc(user.Email)

	// Create fails if the document already exists
	if _, err := docRef.Create(ctx, user); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return ErrUserExists
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	user.ID = user.Email
	return nil
}

// GetUserByEmail retrieves a user by email
func (f *FirestoreClient) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	doc, err := f.client.Collection(usersCollection).Doc(email).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	var user models.User
	if err := doc.DataTo(&user); err != nil {
		return nil, fmt.Errorf("failed to parse user data: %w", err)
	}

	user.ID = doc.Ref.ID
	return &user, nil
}

// GetUserByGoogleID retrieves a user by Google ID
func (f *FirestoreClient) GetUserByGoogleID(ctx context.Context, googleID string) (*models.User, error) {
	iter := f.client.Collection(usersCollection).Where("googleId", "==", googleID).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	var user models.User
	if err := doc.DataTo(&user); err != nil {
		return nil, fmt.Errorf("failed to parse user data: %w", err)
	}

	user.ID = doc.Ref.ID
	return &user, nil
}

// UpdateUser merges updates into the user document
func (f *FirestoreClient) UpdateUser(ctx context.Context, email string, updates map[string]interface{}) error {
	updates["updatedAt"] = time.Now()

	docRef := f.client.Collection(usersCollection).Doc(email)
	if _, err := docRef.Set(ctx, updates, firestore.MergeAll); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	return nil
}

// UpdateUserProfile updates the user's display name
func (f *FirestoreClient) UpdateUserProfile(ctx context.Context, email string, name string) error {
	if name == "" {
		return nil
	}
	return f.UpdateUser(ctx, email, map[string]interface{}{"name": name})
}
