package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"ngo-cms-backend/internal/domains/post"
	"ngo-cms-backend/internal/shared/utils"
	"ngo-cms-backend/pkg/cache"
	"ngo-cms-backend/pkg/logger"
)

const (
	// listCacheTTL: list views được cache 60s
	// Staleness trong bound này là accepted tradeoff, không phải bug
	listCacheTTL = 60 * time.Second

	// relatedLimit: related items capped ở số nhỏ cố định
	relatedLimit = 3
)

type postServiceImpl struct {
	repository post.PostRepository
	cache      cache.Cache
}

func NewPostService(repo post.PostRepository, c cache.Cache) post.PostService {
	return &postServiceImpl{
		repository: repo,
		cache:      c,
	}
}

func (s *postServiceImpl) Create(ctx context.Context, req *post.CreatePostReq) (*post.PostResp, error) {
	if req == nil {
		return nil, fmt.Errorf("create post: invalid request")
	}

	// ========== STEP 1: Validate Input ==========
	// validation.Errors liệt kê MỌI field fail, handler render details map
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// ========== STEP 2: Build Entity ==========
	// NewPost derive slug từ title, sanitize content,
	// derive excerpt nếu client không gửi explicit
	entity := post.NewPost(req.Title, req.Content, req.Excerpt, req.Category, req.Cover, req.Author)

	// ========== STEP 3: Check Slug Unique ==========
	// Post slug KHÔNG có timestamp suffix => trùng title là conflict thật
	// Pre-check cho friendly error; unique index trong DB là backstop
	slugExists, err := s.repository.ExistsBySlug(ctx, entity.Slug, nil)
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	if slugExists {
		return nil, post.ErrDuplicateSlug
	}

	// ========== STEP 4: Persist ==========
	created, err := s.repository.Create(ctx, entity)
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	s.invalidateListCache(ctx)

	return post.PostToResp(created), nil
}

func (s *postServiceImpl) GetBySlug(ctx context.Context, slug string) (*post.PostResp, error) {
	entity, err := s.repository.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return post.PostToResp(entity), nil
}

// GetByID: admin/audit path - trả về cả soft-deleted (DeletedAt visible trong resp)
func (s *postServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*post.PostResp, error) {
	entity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return post.PostToResp(entity), nil
}

// List: read-through cache với 60s TTL
// Cache fail => fall through DB, không fail request
func (s *postServiceImpl) List(ctx context.Context, category string) ([]post.PostListItemResp, error) {
	cacheKey := listCacheKey(category)

	var cached []post.PostListItemResp
	if found, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return cached, nil
	}

	posts, err := s.repository.List(ctx, category)
	if err != nil {
		return nil, err
	}

	items := post.PostsToListItems(posts)

	if err := s.cache.Set(ctx, cacheKey, items, listCacheTTL); err != nil {
		logger.Error("List: cache set failed", err)
	}

	return items, nil
}

func (s *postServiceImpl) GetRelated(ctx context.Context, slug string) ([]post.PostListItemResp, error) {
	// Lấy bài hiện tại để biết category (public path: deleted => 404)
	current, err := s.repository.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	related, err := s.repository.GetRelated(ctx, current.Category, current.Slug, relatedLimit)
	if err != nil {
		return nil, err
	}

	return post.PostsToListItems(related), nil
}

func (s *postServiceImpl) Update(ctx context.Context, id uuid.UUID, req *post.UpdatePostReq) (*post.PostResp, error) {
	if req == nil {
		return nil, fmt.Errorf("update post: invalid request")
	}

	// ========== STEP 1: Validate Partial Payload ==========
	// Cùng rules với create, mỗi field chỉ check khi có mặt
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// ========== STEP 2: Fetch Existing ==========
	existing, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Soft-deleted: mutation coi như row không tồn tại
	// (audit lookup vẫn qua GetByID read path)
	if existing.IsDeleted() {
		return nil, post.ErrPostNotFound
	}

	// ========== STEP 3: Apply Whitelisted Fields ==========
	// Chỉ fields present trong payload được apply
	// Slug giữ nguyên khi đổi title - URL của bài đã publish phải stable
	contentChanged := false
	if req.Title != nil {
		existing.Title = *req.Title
	}
	if req.Content != nil {
		existing.Content = utils.SanitizeHTML(*req.Content)
		contentChanged = true
	}
	if req.Category != nil {
		existing.Category = *req.Category
	}
	if req.Cover != nil {
		existing.Cover = req.Cover
	}
	if req.Author != nil {
		existing.Author = req.Author
	}

	// Excerpt: explicit wins; content đổi mà không có explicit excerpt => re-derive
	if req.Excerpt != nil {
		existing.Excerpt = *req.Excerpt
	} else if contentChanged {
		existing.Excerpt = utils.Excerpt(existing.Content)
	}

	existing.UpdatedAt = time.Now().UTC()

	// ========== STEP 4: Persist ==========
	updated, err := s.repository.Update(ctx, existing)
	if err != nil {
		return nil, err
	}

	s.invalidateListCache(ctx)

	return post.PostToResp(updated), nil
}

func (s *postServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repository.SoftDelete(ctx, id); err != nil {
		return err
	}

	s.invalidateListCache(ctx)
	return nil
}

// invalidateListCache: best-effort, lỗi chỉ log
// Cache staleness tối đa 60s nên miss invalidation không phá correctness
func (s *postServiceImpl) invalidateListCache(ctx context.Context) {
	if err := s.cache.DeletePattern(ctx, "posts:list:*"); err != nil {
		logger.Error("invalidate post list cache failed", err)
	}
}

// Key build từ RAW filter value: repository filter trên raw string,
// nên hai filter khác nhau không bao giờ được share một cache entry
// ("" và "All" là ngoại lệ - repository coi cả hai là không filter)
func listCacheKey(category string) string {
	if category == "" || category == "All" {
		return "posts:list:all"
	}
	return "posts:list:" + category
}
