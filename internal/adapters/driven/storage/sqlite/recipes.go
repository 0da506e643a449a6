package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/craftdex/craftdex/internal/core/domain"
	"github.com/craftdex/craftdex/internal/core/ports/driven"
)

// ingredientChunk bounds the number of IDs bound into one IN clause.
const ingredientChunk = 500

const recipeColumns = `id, run_id, mod_name, archive_path, source_path, recipe_type,
	result_item, result_count, raw_json, created_at`

// recipeStore implements driven.RecipeStore.
type recipeStore struct {
	store *Store
}

var _ driven.RecipeStore = (*recipeStore)(nil)

// InsertBatch stores recipes in one transaction.
func (s *recipeStore) InsertBatch(ctx context.Context, recipes []domain.Recipe) error {
	if len(recipes) == 0 {
		return nil
	}

	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: beginning transaction: %v", domain.ErrStoreWrite, err)
	}
	defer tx.Rollback() //nolint:errcheck

	recipeStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO recipes (run_id, mod_name, archive_path, source_path, recipe_type,
			result_item, result_count, raw_json, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("%w: preparing statement: %v", domain.ErrStoreWrite, err)
	}
	defer recipeStmt.Close()

	ingredientStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO recipe_ingredients (recipe_id, position, item) VALUES (?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("%w: preparing statement: %v", domain.ErrStoreWrite, err)
	}
	defer ingredientStmt.Close()

	now := time.Now().UTC()
	ids := make([]int64, len(recipes))
	for i := range recipes {
		r := &recipes[i]
		recipeType := r.RecipeType
		if recipeType == "" {
			recipeType = domain.TypeUnknown
		}

		res, err := recipeStmt.ExecContext(ctx, r.RunID, r.ModName, r.ArchivePath, r.SourcePath,
			recipeType, nullString(r.ResultItem), nullInt(r.ResultCount), r.RawJSON, now)
		if err != nil {
			return fmt.Errorf("%w: saving recipe %s: %v", domain.ErrStoreWrite, r.SourcePath, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("%w: reading recipe id: %v", domain.ErrStoreWrite, err)
		}
		ids[i] = id

		for pos, item := range r.Ingredients {
			if _, err := ingredientStmt.ExecContext(ctx, id, pos, item); err != nil {
				return fmt.Errorf("%w: saving ingredient of %s: %v", domain.ErrStoreWrite, r.SourcePath, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: committing transaction: %v", domain.ErrStoreWrite, err)
	}

	// IDs only become visible once the batch is committed.
	for i := range recipes {
		recipes[i].ID = ids[i]
		recipes[i].CreatedAt = now
		if recipes[i].RecipeType == "" {
			recipes[i].RecipeType = domain.TypeUnknown
		}
	}
	return nil
}

// Count returns the number of stored recipes.
func (s *recipeStore) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.store.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM recipes").Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: counting recipes: %v", domain.ErrStoreRead, err)
	}
	return count, nil
}

// List returns a page of recipes ordered by ID.
func (s *recipeStore) List(ctx context.Context, offset, limit int) ([]domain.Recipe, error) {
	return s.query(ctx, `
		SELECT `+recipeColumns+` FROM recipes
		ORDER BY id
		LIMIT ? OFFSET ?
	`, limit, offset)
}

// SearchByOutput matches the result item case-insensitively.
// Recipes without a result never match.
func (s *recipeStore) SearchByOutput(ctx context.Context, query string) ([]domain.Recipe, error) {
	return s.query(ctx, `
		SELECT `+recipeColumns+` FROM recipes
		WHERE result_item IS NOT NULL AND result_item LIKE ? ESCAPE '\'
		ORDER BY id
	`, likePattern(query))
}

// SearchByIngredient matches any ingredient case-insensitively.
func (s *recipeStore) SearchByIngredient(ctx context.Context, query string) ([]domain.Recipe, error) {
	return s.query(ctx, `
		SELECT `+recipeColumns+` FROM recipes r
		WHERE EXISTS (
			SELECT 1 FROM recipe_ingredients i
			WHERE i.recipe_id = r.id AND i.item LIKE ? ESCAPE '\'
		)
		ORDER BY id
	`, likePattern(query))
}

// Get retrieves a recipe by ID.
func (s *recipeStore) Get(ctx context.Context, id int64) (*domain.Recipe, error) {
	recipes, err := s.query(ctx, `SELECT `+recipeColumns+` FROM recipes WHERE id = ?`, id)
	if err != nil {
		return nil, err
	}
	if len(recipes) == 0 {
		return nil, domain.ErrNotFound
	}
	return &recipes[0], nil
}

// CountByType returns recipe counts per type, largest first.
func (s *recipeStore) CountByType(ctx context.Context) ([]domain.TypeCount, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT recipe_type, COUNT(*) AS n FROM recipes
		GROUP BY recipe_type
		ORDER BY n DESC, recipe_type
	`)
	if err != nil {
		return nil, fmt.Errorf("%w: counting types: %v", domain.ErrStoreRead, err)
	}
	defer rows.Close()

	counts := make([]domain.TypeCount, 0)
	for rows.Next() {
		var c domain.TypeCount
		if err := rows.Scan(&c.RecipeType, &c.Count); err != nil {
			return nil, fmt.Errorf("%w: scanning type count: %v", domain.ErrStoreRead, err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreRead, err)
	}
	return counts, nil
}

// DeleteArchive removes the recipes of one archive.
func (s *recipeStore) DeleteArchive(ctx context.Context, archivePath string) (int, error) {
	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: beginning transaction: %v", domain.ErrStoreWrite, err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, `
		DELETE FROM recipe_ingredients
		WHERE recipe_id IN (SELECT id FROM recipes WHERE archive_path = ?)
	`, archivePath); err != nil {
		return 0, fmt.Errorf("%w: deleting ingredients: %v", domain.ErrStoreWrite, err)
	}

	res, err := tx.ExecContext(ctx, "DELETE FROM recipes WHERE archive_path = ?", archivePath)
	if err != nil {
		return 0, fmt.Errorf("%w: deleting recipes: %v", domain.ErrStoreWrite, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrStoreWrite, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%w: committing transaction: %v", domain.ErrStoreWrite, err)
	}
	return int(n), nil
}

// Clear removes all recipes. IDs are not reused afterwards.
func (s *recipeStore) Clear(ctx context.Context) error {
	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: beginning transaction: %v", domain.ErrStoreWrite, err)
	}
	defer tx.Rollback() //nolint:errcheck

	for _, stmt := range []string{"DELETE FROM recipe_ingredients", "DELETE FROM recipes"} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%w: clearing recipes: %v", domain.ErrStoreWrite, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: committing transaction: %v", domain.ErrStoreWrite, err)
	}
	return nil
}

// query loads recipes and their ingredients from one read transaction so
// that a concurrent batch is either fully visible or not at all.
func (s *recipeStore) query(ctx context.Context, query string, args ...any) ([]domain.Recipe, error) {
	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: beginning transaction: %v", domain.ErrStoreRead, err)
	}
	defer tx.Rollback() //nolint:errcheck

	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: querying recipes: %v", domain.ErrStoreRead, err)
	}
	recipes, err := scanRecipes(rows)
	if err != nil {
		return nil, err
	}

	if err := loadIngredients(ctx, tx, recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

func scanRecipes(rows *sql.Rows) ([]domain.Recipe, error) {
	defer rows.Close()

	recipes := make([]domain.Recipe, 0)
	for rows.Next() {
		var r domain.Recipe
		var resultItem sql.NullString
		var resultCount sql.NullInt64
		var createdAt sql.NullTime
		if err := rows.Scan(&r.ID, &r.RunID, &r.ModName, &r.ArchivePath, &r.SourcePath,
			&r.RecipeType, &resultItem, &resultCount, &r.RawJSON, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: scanning recipe: %v", domain.ErrStoreRead, err)
		}

		r.Kind = domain.ClassifyRecipeType(r.RecipeType)
		if resultItem.Valid {
			item := resultItem.String
			r.ResultItem = &item
		}
		if resultCount.Valid {
			count := int(resultCount.Int64)
			r.ResultCount = &count
		}
		if createdAt.Valid {
			r.CreatedAt = createdAt.Time
		}
		r.Ingredients = make([]string, 0)
		recipes = append(recipes, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreRead, err)
	}
	return recipes, nil
}

// loadIngredients fills the ingredient lists in position order.
func loadIngredients(ctx context.Context, tx *sql.Tx, recipes []domain.Recipe) error {
	index := make(map[int64]int, len(recipes))
	for i := range recipes {
		index[recipes[i].ID] = i
	}

	for start := 0; start < len(recipes); start += ingredientChunk {
		end := min(start+ingredientChunk, len(recipes))

		placeholders := make([]string, 0, end-start)
		args := make([]any, 0, end-start)
		for _, r := range recipes[start:end] {
			placeholders = append(placeholders, "?")
			args = append(args, r.ID)
		}

		rows, err := tx.QueryContext(ctx, `
			SELECT recipe_id, item FROM recipe_ingredients
			WHERE recipe_id IN (`+strings.Join(placeholders, ",")+`)
			ORDER BY recipe_id, position
		`, args...)
		if err != nil {
			return fmt.Errorf("%w: querying ingredients: %v", domain.ErrStoreRead, err)
		}

		for rows.Next() {
			var id int64
			var item string
			if err := rows.Scan(&id, &item); err != nil {
				rows.Close()
				return fmt.Errorf("%w: scanning ingredient: %v", domain.ErrStoreRead, err)
			}
			if i, ok := index[id]; ok {
				recipes[i].Ingredients = append(recipes[i].Ingredients, item)
			}
		}
		err = rows.Err()
		rows.Close()
		if err != nil {
			return fmt.Errorf("%w: %v", domain.ErrStoreRead, err)
		}
	}
	return nil
}

// likePattern builds a substring pattern, escaping LIKE wildcards.
func likePattern(query string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(query) + "%"
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullInt(n *int) sql.NullInt64 {
	if n == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*n), Valid: true}
}
