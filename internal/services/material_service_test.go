package services_test

import (
	"context"
	"errors"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"learnlive/internal/models/request_models"
	"learnlive/internal/repositories/repotest"
	"learnlive/internal/services"
	"learnlive/pkg/filestore"
	"learnlive/pkg/utils"
)

type recordingStore struct {
	saved   []string
	removed []string
	saveErr error
}

func (r *recordingStore) Save(file *multipart.FileHeader) (*filestore.StoredFile, error) {
	if r.saveErr != nil {
		return nil, r.saveErr
	}
	name := "stored-" + file.Filename
	r.saved = append(r.saved, name)
	return &filestore.StoredFile{Name: name, URL: "/static/materials/" + name, Size: file.Size}, nil
}

func (r *recordingStore) Remove(name string) error {
	r.removed = append(r.removed, name)
	return nil
}

var notesRequest = request_models.CreateMaterialRequest{Title: "Week 1 notes", Type: "document", Content: "Read chapter 1"}

func TestNonOwnerCannotManageMaterials(t *testing.T) {
	store := repotest.NewStore()
	files := &recordingStore{}
	svc := services.NewMaterialService(store.Materials(), store.Courses(), files, zap.NewNop())
	ctx := context.Background()

	owner := newAccount(t, store, "owner@example.com", utils.RoleTeacher)
	other := newAccount(t, store, "other@example.com", utils.RoleTeacher)
	course := newCourse(t, store, owner)

	_, err := svc.CreateMaterial(ctx, other, course.ID.String(), notesRequest, uploadHeader(t, "notes.pdf", "pdf"))
	assert.ErrorIs(t, err, utils.ErrForbidden)
	assert.Empty(t, files.saved, "guard runs before the file is stored")

	material, err := svc.CreateMaterial(ctx, owner, course.ID.String(), notesRequest, nil)
	require.NoError(t, err)
	require.NotNil(t, material.Content)
	assert.Equal(t, "Read chapter 1", *material.Content)

	err = svc.DeleteMaterial(ctx, other, course.ID.String(), material.ID.String())
	assert.ErrorIs(t, err, utils.ErrForbidden)

	require.NoError(t, svc.DeleteMaterial(ctx, owner, course.ID.String(), material.ID.String()))
	_, err = svc.GetMaterial(ctx, owner, course.ID.String(), material.ID.String())
	assert.ErrorIs(t, err, utils.ErrMaterialNotFound)
}

func TestStudentReadsMaterialsOnlyAfterEnrolling(t *testing.T) {
	store := repotest.NewStore()
	materials := services.NewMaterialService(store.Materials(), store.Courses(), &recordingStore{}, zap.NewNop())
	courses := services.NewCourseService(store.Courses(), zap.NewNop())
	ctx := context.Background()

	owner := newAccount(t, store, "owner@example.com", utils.RoleTeacher)
	student := newAccount(t, store, "student@example.com", utils.RoleStudent)
	course := newCourse(t, store, owner)

	_, err := materials.CreateMaterial(ctx, owner, course.ID.String(), notesRequest, nil)
	require.NoError(t, err)

	_, err = materials.ListMaterials(ctx, student, course.ID.String())
	assert.ErrorIs(t, err, utils.ErrForbidden)

	require.NoError(t, courses.Enroll(ctx, student, course.ID.String()))

	list, err := materials.ListMaterials(ctx, student, course.ID.String())
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestDeleteMaterialRemovesStoredFile(t *testing.T) {
	store := repotest.NewStore()
	root := t.TempDir()
	files, err := filestore.NewLocalStore(root, "/static")
	require.NoError(t, err)
	svc := services.NewMaterialService(store.Materials(), store.Courses(), files, zap.NewNop())
	ctx := context.Background()

	owner := newAccount(t, store, "owner@example.com", utils.RoleTeacher)
	course := newCourse(t, store, owner)

	material, err := svc.CreateMaterial(ctx, owner, course.ID.String(), notesRequest, uploadHeader(t, "slides.pdf", "%PDF-1.4"))
	require.NoError(t, err)
	require.NotNil(t, material.FileName)
	require.NotNil(t, material.FileURL)
	assert.Equal(t, "/static/materials/"+*material.FileName, *material.FileURL)

	onDisk := filepath.Join(root, "materials", *material.FileName)
	_, err = os.Stat(onDisk)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteMaterial(ctx, owner, course.ID.String(), material.ID.String()))
	_, err = os.Stat(onDisk)
	assert.True(t, os.IsNotExist(err))
}

func TestCreateMaterialUploadErrors(t *testing.T) {
	store := repotest.NewStore()
	files := &recordingStore{}
	svc := services.NewMaterialService(store.Materials(), store.Courses(), files, zap.NewNop())
	ctx := context.Background()

	owner := newAccount(t, store, "owner@example.com", utils.RoleTeacher)
	course := newCourse(t, store, owner)

	_, err := svc.CreateMaterial(ctx, owner, course.ID.String(), notesRequest, uploadHeader(t, "empty.txt", ""))
	assert.ErrorIs(t, err, utils.ErrInvalidUpload)

	files.saveErr = errors.New("disk full")
	_, err = svc.CreateMaterial(ctx, owner, course.ID.String(), notesRequest, uploadHeader(t, "notes.txt", "hello"))
	assert.ErrorIs(t, err, utils.ErrUploadFailure)
}

func TestMaterialMustBelongToCourse(t *testing.T) {
	store := repotest.NewStore()
	svc := services.NewMaterialService(store.Materials(), store.Courses(), &recordingStore{}, zap.NewNop())
	ctx := context.Background()

	owner := newAccount(t, store, "owner@example.com", utils.RoleTeacher)
	first := newCourse(t, store, owner)
	second := newCourse(t, store, owner)

	material, err := svc.CreateMaterial(ctx, owner, first.ID.String(), notesRequest, nil)
	require.NoError(t, err)

	_, err = svc.GetMaterial(ctx, owner, second.ID.String(), material.ID.String())
	assert.ErrorIs(t, err, utils.ErrMaterialNotFound)

	_, err = svc.GetMaterial(ctx, owner, first.ID.String(), "bogus")
	assert.ErrorIs(t, err, utils.ErrInvalidIdentifier)
}

func TestCreateMaterialLogsStoredFileSize(t *testing.T) {
	store := repotest.NewStore()
	core, logs := observer.New(zap.InfoLevel)
	svc := services.NewMaterialService(store.Materials(), store.Courses(), &recordingStore{}, zap.New(core))
	ctx := context.Background()

	owner := newAccount(t, store, "owner@example.com", utils.RoleTeacher)
	course := newCourse(t, store, owner)

	_, err := svc.CreateMaterial(ctx, owner, course.ID.String(), notesRequest, uploadHeader(t, "notes.txt", "lesson one"))
	require.NoError(t, err)

	entries := logs.FilterMessage("material created").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(len("lesson one")), entries[0].ContextMap()["file_size"])
}
