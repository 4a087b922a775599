package services_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"learnlive/internal/models/db_models"
	"learnlive/internal/repositories/repotest"
	"learnlive/pkg/utils"
)

func newAccount(t *testing.T, store *repotest.Store, email, role string) *utils.Principal {
	t.Helper()
	account := &db_models.Account{Email: email, Name: email, Role: role, PasswordHash: "x"}
	require.NoError(t, store.Accounts().Insert(context.Background(), account))
	return &utils.Principal{AccountID: account.ID, Email: account.Email, Name: account.Name, Role: role}
}

func newCourse(t *testing.T, store *repotest.Store, owner *utils.Principal) *db_models.Course {
	t.Helper()
	course := &db_models.Course{
		Title:       "Algebra I",
		Grade:       "9",
		Price:       49,
		TeacherID:   owner.AccountID,
		TeacherName: owner.Name,
		Students:    []string{},
	}
	require.NoError(t, store.Courses().Insert(context.Background(), course))
	return course
}

func uploadHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["file"][0]
}
