package service

import (
	"errors"
	"fmt"
	"time"

	"coachsite/internal/markdown"
	"coachsite/internal/model"
	"coachsite/internal/repository"
)

var ErrDuplicateTitle = errors.New("a post with that title already exists")

type BlogService struct {
	postRepository repository.PostRepository
	parser         *markdown.Parser
	now            func() time.Time
}

func NewBlogService(postRepository repository.PostRepository) *BlogService {
	return &BlogService{
		postRepository: postRepository,
		parser:         markdown.NewParser(),
		now:            time.Now,
	}
}

// CreatePost stamps the current date and persists the post. Body is
// stored as markdown and rendered on read.
func (s *BlogService) CreatePost(title, subtitle, body, author, imageURL string) (*model.BlogPost, error) {
	now := s.now()

	post := &model.BlogPost{
		Title:     title,
		Subtitle:  subtitle,
		Date:      now.Format("January 2, 2006"),
		Body:      body,
		Author:    author,
		ImageURL:  imageURL,
		CreatedAt: now,
	}

	err := s.postRepository.Create(post)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateTitle) {
			return nil, ErrDuplicateTitle
		}
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return post, nil
}

// Posts returns every post in creation order.
func (s *BlogService) Posts() ([]*model.BlogPost, error) {
	return s.postRepository.List()
}

// Post returns one post with its body rendered to HTML.
func (s *BlogService) Post(id int64) (*model.BlogPost, error) {
	post, err := s.postRepository.ByID(id)
	if err != nil {
		return nil, err
	}

	html, err := s.parser.Parse([]byte(post.Body))
	if err != nil {
		// A post that fails to render is still readable as plain text
		post.HTMLBody = post.Body
		return post, nil
	}

	post.HTMLBody = string(html)
	return post, nil
}
