package server

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"postboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListPosts_OwnerPlaceholder(t *testing.T) {
	s, _, posts := newAccountTestServer()
	posts.On("List", mock.Anything).Return([]models.Post{
		{ID: 1, Title: "Post_Form_Ivan", Content: "Hi I am Ivan", OwnerID: 1, Owner: &models.Account{ID: 1, Name: "Ivan"}},
		{ID: 3, Title: "Orphan", Content: "lost", OwnerID: 42},
	}, nil)
	app := newViewApp()
	app.Get("/posts", s.ListPosts)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/posts", nil))
	require.NoError(t, err)
	body := readBody(t, resp)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "ID: 1, Title: Post_Form_Ivan, Content: Hi I am Ivan, User: Ivan")
	assert.Contains(t, body, "ID: 3, Title: Orphan, Content: lost, User: N/A")
}

func TestAddPostForm_ListsAccounts(t *testing.T) {
	s, accounts, _ := newAccountTestServer()
	accounts.On("List", mock.Anything).Return([]models.Account{
		{ID: 1, Name: "Ivan"},
		{ID: 2, Name: "Vova"},
	}, nil)
	app := newViewApp()
	app.Get("/add_post_form", s.AddPostForm)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/add_post_form", nil))
	require.NoError(t, err)
	body := readBody(t, resp)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `<option value="1">Ivan</option>`)
	assert.Contains(t, body, `<option value="2">Vova</option>`)
}

func TestCreatePost(t *testing.T) {
	tests := []struct {
		name           string
		form           url.Values
		mockSetup      func(m *MockPostRepository)
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "Success",
			form: url.Values{"title": {"Post_Form_Ivan"}, "content": {"Hi I am Ivan"}, "user_id": {"1"}},
			mockSetup: func(m *MockPostRepository) {
				m.On("Create", mock.Anything, mock.MatchedBy(func(p *models.Post) bool {
					return p.Title == "Post_Form_Ivan" && p.OwnerID == 1
				})).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Missing content",
			form:           url.Values{"title": {"t"}, "user_id": {"1"}},
			mockSetup:      func(*MockPostRepository) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedCode:   models.CodeMalformedInput,
		},
		{
			name:           "Non-numeric owner",
			form:           url.Values{"title": {"t"}, "content": {"c"}, "user_id": {"abc"}},
			mockSetup:      func(*MockPostRepository) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedCode:   models.CodeMalformedInput,
		},
		{
			name:           "Negative owner",
			form:           url.Values{"title": {"t"}, "content": {"c"}, "user_id": {"-4"}},
			mockSetup:      func(*MockPostRepository) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedCode:   models.CodeMalformedInput,
		},
		{
			name: "Unknown owner",
			form: url.Values{"title": {"t"}, "content": {"c"}, "user_id": {"99"}},
			mockSetup: func(m *MockPostRepository) {
				m.On("Create", mock.Anything, mock.Anything).
					Return(models.NewValidationError("Owner account does not exist"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   models.CodeValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _, posts := newAccountTestServer()
			tt.mockSetup(posts)
			app := newViewApp()
			app.Post("/posts/add", s.CreatePost)

			resp, err := app.Test(formRequest("/posts/add", tt.form))
			require.NoError(t, err)
			body := readBody(t, resp)

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decodeError(t, body).Code)
			} else {
				assert.Contains(t, body, "Post Post_Form_Ivan has been added.")
			}
			posts.AssertExpectations(t)
		})
	}
}

func TestEditPost(t *testing.T) {
	t.Run("Form prefilled", func(t *testing.T) {
		s, _, posts := newAccountTestServer()
		posts.On("GetByID", mock.Anything, uint(1)).Return(&models.Post{ID: 1, Title: "t", Content: "Hi & bye"}, nil)
		app := newViewApp()
		app.Get("/posts/:id/edit_form", s.EditPostForm)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/posts/1/edit_form", nil))
		require.NoError(t, err)
		body := readBody(t, resp)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, body, `<textarea name="content">Hi &amp; bye</textarea>`)
	})

	t.Run("Form not found", func(t *testing.T) {
		s, _, posts := newAccountTestServer()
		posts.On("GetByID", mock.Anything, uint(8)).Return(nil, models.NewNotFoundError("Post", 8))
		app := newViewApp()
		app.Get("/posts/:id/edit_form", s.EditPostForm)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/posts/8/edit_form", nil))
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("Empty content accepted", func(t *testing.T) {
		s, _, posts := newAccountTestServer()
		posts.On("UpdateContent", mock.Anything, uint(1), "").Return(&models.Post{ID: 1, Title: "Post_Form_Ivan"}, nil)
		app := newViewApp()
		app.Post("/posts/:id/edit", s.UpdatePost)

		resp, err := app.Test(formRequest("/posts/1/edit", url.Values{"content": {""}}))
		require.NoError(t, err)
		body := readBody(t, resp)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, body, "Post Post_Form_Ivan has been updated.")
	})

	t.Run("Missing content", func(t *testing.T) {
		s, _, _ := newAccountTestServer()
		app := newViewApp()
		app.Post("/posts/:id/edit", s.UpdatePost)

		resp, err := app.Test(formRequest("/posts/1/edit", url.Values{}))
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})
}

func TestDeletePost(t *testing.T) {
	t.Run("Confirm form", func(t *testing.T) {
		s, _, posts := newAccountTestServer()
		posts.On("GetByID", mock.Anything, uint(2)).Return(&models.Post{ID: 2, Title: "Post_Form_Ivan_2"}, nil)
		app := newViewApp()
		app.Get("/posts/:id/delete_form", s.DeletePostForm)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/posts/2/delete_form", nil))
		require.NoError(t, err)
		body := readBody(t, resp)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, body, "<b>Post_Form_Ivan_2</b>")
	})

	t.Run("Success", func(t *testing.T) {
		s, _, posts := newAccountTestServer()
		posts.On("Delete", mock.Anything, uint(2)).Return(nil)
		app := newViewApp()
		app.Post("/posts/:id/delete", s.DeletePost)

		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/posts/2/delete", nil))
		require.NoError(t, err)
		body := readBody(t, resp)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, body, "Post with ID 2 has been deleted.")
	})

	t.Run("Bad id", func(t *testing.T) {
		s, _, _ := newAccountTestServer()
		app := newViewApp()
		app.Post("/posts/:id/delete", s.DeletePost)

		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/posts/x/delete", nil))
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})
}
