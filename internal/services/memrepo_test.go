package services

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/bhupatisharma/swish/internal/apperrors"
	"github.com/bhupatisharma/swish/internal/models"
)

// memPostRepo is an in-memory PostRepository with the same guarded-update
// semantics as the Mongo implementation.
type memPostRepo struct {
	mu    sync.Mutex
	posts map[bson.ObjectID]*models.Post
	order []bson.ObjectID
}

func newMemPostRepo() *memPostRepo {
	return &memPostRepo{posts: map[bson.ObjectID]*models.Post{}}
}

func (r *memPostRepo) Insert(_ context.Context, post *models.Post) (bson.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := bson.NewObjectID()
	post.ID = id
	cp := clonePost(post)
	r.posts[id] = &cp
	r.order = append(r.order, id)
	return id, nil
}

func (r *memPostRepo) FindByID(_ context.Context, id bson.ObjectID) (*models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	post, ok := r.posts[id]
	if !ok {
		return nil, apperrors.ErrPostNotFound
	}
	cp := clonePost(post)
	return &cp, nil
}

func (r *memPostRepo) ListNewestFirst(_ context.Context) ([]models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Post, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		out = append(out, clonePost(r.posts[r.order[i]]))
	}
	return out, nil
}

func (r *memPostRepo) AddLike(_ context.Context, postID, userID bson.ObjectID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	post, ok := r.posts[postID]
	if !ok {
		return false, nil
	}
	for _, id := range post.Likes {
		if id == userID {
			return false, nil
		}
	}
	post.Likes = append(post.Likes, userID)
	return true, nil
}

func (r *memPostRepo) RemoveLike(_ context.Context, postID, userID bson.ObjectID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	post, ok := r.posts[postID]
	if !ok {
		return false, nil
	}
	for i, id := range post.Likes {
		if id == userID {
			post.Likes = append(post.Likes[:i], post.Likes[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *memPostRepo) AppendComment(_ context.Context, postID bson.ObjectID, comment models.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	post, ok := r.posts[postID]
	if !ok {
		return apperrors.ErrPostNotFound
	}
	post.Comments = append(post.Comments, comment)
	return nil
}

func (r *memPostRepo) Exists(_ context.Context, id bson.ObjectID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.posts[id]
	return ok, nil
}

func (r *memPostRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.posts)), nil
}

func clonePost(p *models.Post) models.Post {
	cp := *p
	cp.Likes = append([]bson.ObjectID(nil), p.Likes...)
	cp.Comments = append([]models.Comment(nil), p.Comments...)
	return cp
}

// memUserRepo is an in-memory UserRepository for feed tests.
type memUserRepo struct {
	mu    sync.Mutex
	users map[bson.ObjectID]models.User
	// finds counts FindByIDs calls, to assert batching
	finds int
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[bson.ObjectID]models.User{}}
}

func (r *memUserRepo) add(u models.User) bson.ObjectID {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u.ID.IsZero() {
		u.ID = bson.NewObjectID()
	}
	r.users[u.ID] = u
	return u.ID
}

func (r *memUserRepo) Insert(_ context.Context, user *models.User) (bson.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return bson.NilObjectID, apperrors.ErrDuplicateEmail
		}
	}
	user.ID = bson.NewObjectID()
	r.users[user.ID] = *user
	return user.ID, nil
}

func (r *memUserRepo) FindByID(_ context.Context, id bson.ObjectID) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return &u, nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *memUserRepo) FindByIDs(_ context.Context, ids []bson.ObjectID) (map[bson.ObjectID]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.finds++
	out := make(map[bson.ObjectID]models.User, len(ids))
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			out[id] = u
		}
	}
	return out, nil
}

func (r *memUserRepo) UpdateFields(_ context.Context, id bson.ObjectID, set bson.M) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	if u.Student != nil {
		s := *u.Student
		u.Student = &s
	}
	if u.Faculty != nil {
		f := *u.Faculty
		u.Faculty = &f
	}
	for key, value := range set {
		switch key {
		case "name":
			u.Name = value.(string)
		case "contact":
			u.Contact = value.(string)
		case "bio":
			u.Bio = value.(string)
		case "skills":
			u.Skills = value.([]string)
		case "updated_at":
			u.UpdatedAt = value.(time.Time)
		case "student.student_id":
			u.Student.StudentID = value.(string)
		case "student.department":
			u.Student.Department = value.(string)
		case "student.year":
			u.Student.Year = value.(string)
		case "faculty.employee_id":
			u.Faculty.EmployeeID = value.(string)
		case "faculty.department":
			u.Faculty.Department = value.(string)
		case "faculty.designation":
			u.Faculty.Designation = value.(string)
		}
	}
	r.users[id] = u
	return nil
}

func (r *memUserRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.users)), nil
}
