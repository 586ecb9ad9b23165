package seed

import (
	"context"
	"fmt"

	"postboard/internal/models"
	"postboard/internal/service"
)

// ScenarioResult captures what the demo walkthrough observed.
type ScenarioResult struct {
	Ivan, Vova     *models.Account
	Accounts       []models.Account // after the edits, before Vova is deleted
	Posts          []models.Post
	IvanPosts      []models.Post
	Remaining      []models.Account // after Vova is deleted
	RemainingPosts []models.Post
}

// Scenario replays the two-account demo: Ivan and Vova sign up and write
// three posts, Ivan's second post is deleted, Vova changes email, Ivan's
// first post is rewritten, and finally Vova is deleted along with the posts they own.
func (s *Seeder) Scenario(ctx context.Context) (*ScenarioResult, error) {
	res := &ScenarioResult{}
	var err error

	if res.Ivan, err = s.accounts.CreateAccount(ctx, service.CreateAccountInput{
		Name: "Ivan", Email: "iva@mail.ru", Secret: "1234",
	}); err != nil {
		return nil, fmt.Errorf("create Ivan: %w", err)
	}
	if res.Vova, err = s.accounts.CreateAccount(ctx, service.CreateAccountInput{
		Name: "Vova", Email: "vova@mail.ru", Secret: "1234",
	}); err != nil {
		return nil, fmt.Errorf("create Vova: %w", err)
	}

	first, err := s.posts.CreatePost(ctx, service.CreatePostInput{
		Title: "Post_Form_Ivan", Content: "Hi I am Ivan", OwnerID: res.Ivan.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("create first post: %w", err)
	}
	second, err := s.posts.CreatePost(ctx, service.CreatePostInput{
		Title: "Post_Form_Ivan_2", Content: "Hi I am Ivan and it my second post", OwnerID: res.Ivan.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("create second post: %w", err)
	}
	if _, err := s.posts.CreatePost(ctx, service.CreatePostInput{
		Title: "Post_Form_Vova", Content: "Hi I am Vova", OwnerID: res.Vova.ID,
	}); err != nil {
		return nil, fmt.Errorf("create Vova's post: %w", err)
	}

	if err := s.posts.DeletePost(ctx, second.ID); err != nil {
		return nil, fmt.Errorf("delete second post: %w", err)
	}
	if res.Vova, err = s.accounts.UpdateEmail(ctx, res.Vova.ID, "vovaUpdate@mail.ru"); err != nil {
		return nil, fmt.Errorf("update Vova's email: %w", err)
	}
	if _, err := s.posts.UpdateContent(ctx, first.ID, "Hi I am Vova updated"); err != nil {
		return nil, fmt.Errorf("update first post: %w", err)
	}

	if res.Accounts, err = s.accounts.ListAccounts(ctx); err != nil {
		return nil, err
	}
	for _, a := range res.Accounts {
		s.log.InfoContext(ctx, "account", "id", a.ID, "name", a.Name, "email", a.Email)
	}
	if res.Posts, err = s.posts.ListPosts(ctx); err != nil {
		return nil, err
	}
	for _, p := range res.Posts {
		s.log.InfoContext(ctx, "post", "id", p.ID, "title", p.Title, "content", p.Content, "owner", p.OwnerName())
	}
	if _, res.IvanPosts, err = s.accounts.ListAccountPosts(ctx, res.Ivan.ID); err != nil {
		return nil, err
	}
	s.log.InfoContext(ctx, "Ivan's posts", "count", len(res.IvanPosts))

	if err := s.accounts.DeleteAccount(ctx, res.Vova.ID); err != nil {
		return nil, fmt.Errorf("delete Vova: %w", err)
	}
	if res.Remaining, err = s.accounts.ListAccounts(ctx); err != nil {
		return nil, err
	}
	if res.RemainingPosts, err = s.posts.ListPosts(ctx); err != nil {
		return nil, err
	}
	s.log.InfoContext(ctx, "Scenario complete", "accounts", len(res.Remaining), "posts", len(res.RemainingPosts))
	return res, nil
}
