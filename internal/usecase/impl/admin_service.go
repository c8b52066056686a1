package impl

import (
	"context"
	"log/slog"

	deliverycontext "shapeme/internal/delivery/context"
	"shapeme/internal/domain/entity"
	"shapeme/internal/domain/repository"
	"shapeme/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Stats computes catalog totals and per-category recipe counts in one
// transaction so the numbers are consistent with each other.
func (srv *adminService) Stats(ctx context.Context) (*usecase.StatsOutput, error) {
	var output *usecase.StatsOutput

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		categoryRepo := repoFactory.CategoryRepo()
		recipeRepo := repoFactory.RecipeRepo()

		totalCategories, err := categoryRepo.Count(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to count categories")
		}

		totalRecipes, err := recipeRepo.Count(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to count recipes")
		}

		categories, err := categoryRepo.List(ctx, 0, int(totalCategories))
		if err != nil {
			return errors.Wrap(err, "failed to list categories")
		}

		stats := make([]*usecase.CategoryStats, 0, len(categories))
		for _, category := range categories {
			count, err := recipeRepo.CountByCategory(ctx, category.ID)
			if err != nil {
				return errors.Wrap(err, "failed to count recipes for category")
			}
			stats = append(stats, &usecase.CategoryStats{
				Category:     category,
				RecipesCount: count,
			})
		}

		output = &usecase.StatsOutput{
			TotalCategories: totalCategories,
			TotalRecipes:    totalRecipes,
			Categories:      stats,
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute stats transaction", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute stats transaction")
	}

	return output, nil
}

// SeedData loads the demo catalog. Seeding is skipped when any category
// already exists, making the operation safe to call repeatedly.
func (srv *adminService) SeedData(ctx context.Context) (*usecase.SeedOutput, error) {
	srv.log(ctx).Info("Seeding demo catalog")

	var output *usecase.SeedOutput
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		categoryRepo := repoFactory.CategoryRepo()
		recipeRepo := repoFactory.RecipeRepo()

		existing, err := categoryRepo.Count(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to count categories before seeding")
		}
		if existing > 0 {
			output = &usecase.SeedOutput{}

			return nil
		}

		categories := seedCategories()
		for _, category := range categories {
			if err := categoryRepo.Create(ctx, category); err != nil {
				return errors.Wrap(err, "failed to seed category")
			}
		}

		recipes := seedRecipes(categories)
		for _, recipe := range recipes {
			if err := recipeRepo.Create(ctx, recipe); err != nil {
				return errors.Wrap(err, "failed to seed recipe")
			}
		}

		output = &usecase.SeedOutput{
			CategoriesCreated: len(categories),
			RecipesCreated:    len(recipes),
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute seed transaction", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute seed transaction")
	}
	srv.log(ctx).Info("Seed completed",
		slog.Int("categoriesCreated", output.CategoriesCreated),
		slog.Int("recipesCreated", output.RecipesCreated))

	return output, nil
}

// ResetData wipes the catalog. Recipes go first so no category delete ever
// trips over the foreign key.
func (srv *adminService) ResetData(ctx context.Context) (*usecase.ResetOutput, error) {
	srv.log(ctx).Warn("Resetting catalog data")

	var output *usecase.ResetOutput
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		categoryRepo := repoFactory.CategoryRepo()
		recipeRepo := repoFactory.RecipeRepo()

		recipesDeleted, err := recipeRepo.DeleteAll(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to delete recipes")
		}

		categoriesDeleted, err := categoryRepo.DeleteAll(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to delete categories")
		}

		output = &usecase.ResetOutput{
			CategoriesDeleted: categoriesDeleted,
			RecipesDeleted:    recipesDeleted,
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute reset transaction", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute reset transaction")
	}
	srv.log(ctx).Warn("Catalog reset completed",
		slog.Int64("categoriesDeleted", output.CategoriesDeleted),
		slog.Int64("recipesDeleted", output.RecipesDeleted))

	return output, nil
}

// seedCategories builds the demo categories in insertion order.
func seedCategories() []*entity.Category {
	return []*entity.Category{
		{NamePT: "Saladas", NameEN: "Salads", NameES: "Ensaladas"},
		{NamePT: "Smoothies", NameEN: "Smoothies", NameES: "Batidos"},
		{NamePT: "Pratos Principais", NameEN: "Main Dishes", NameES: "Platos Principales"},
		{NamePT: "Sobremesas Saudáveis", NameEN: "Healthy Desserts", NameES: "Postres Saludables"},
		{NamePT: "Lanches", NameEN: "Snacks", NameES: "Aperitivos"},
	}
}

// seedRecipes builds the demo recipes, one per seeded category.
func seedRecipes(categories []*entity.Category) []*entity.Recipe {
	return []*entity.Recipe{
		{
			TitlePT:         "Salada de Quinoa com Vegetais",
			TitleEN:         "Quinoa Salad with Vegetables",
			TitleES:         "Ensalada de Quinoa con Vegetales",
			DescriptionPT:   "Uma salada nutritiva e saborosa com quinoa, vegetais frescos e molho especial de limão.",
			DescriptionEN:   "A nutritious and tasty salad with quinoa, fresh vegetables and special lemon dressing.",
			DescriptionES:   "Una ensalada nutritiva y sabrosa con quinoa, vegetales frescos y aderezo especial de limón.",
			ImageURL:        "https://images.unsplash.com/photo-1512621776951-a57141f2eefd?w=400",
			Difficulty:      2,
			PrepTimeMinutes: 20,
			CategoryID:      categories[0].ID,
		},
		{
			TitlePT:         "Smoothie Verde Detox",
			TitleEN:         "Green Detox Smoothie",
			TitleES:         "Batido Verde Detox",
			DescriptionPT:   "Smoothie refrescante com espinafre, banana, maçã e água de coco para desintoxicar o corpo.",
			DescriptionEN:   "Refreshing smoothie with spinach, banana, apple and coconut water to detox the body.",
			DescriptionES:   "Batido refrescante con espinacas, plátano, manzana y agua de coco para desintoxicar el cuerpo.",
			ImageURL:        "https://images.unsplash.com/photo-1610970881699-44a5587cabec?w=400",
			Difficulty:      1,
			PrepTimeMinutes: 5,
			CategoryID:      categories[1].ID,
		},
		{
			TitlePT:         "Salmão Grelhado com Ervas",
			TitleEN:         "Grilled Salmon with Herbs",
			TitleES:         "Salmón a la Parrilla con Hierbas",
			DescriptionPT:   "Salmão grelhado com ervas finas, acompanhado de legumes no vapor e arroz integral.",
			DescriptionEN:   "Grilled salmon with fine herbs, served with steamed vegetables and brown rice.",
			DescriptionES:   "Salmón a la parrilla con hierbas finas, acompañado de verduras al vapor y arroz integral.",
			ImageURL:        "https://images.unsplash.com/photo-1467003909585-2f8a72700288?w=400",
			Difficulty:      3,
			PrepTimeMinutes: 30,
			CategoryID:      categories[2].ID,
		},
		{
			TitlePT:         "Mousse de Chocolate com Abacate",
			TitleEN:         "Chocolate Avocado Mousse",
			TitleES:         "Mousse de Chocolate con Aguacate",
			DescriptionPT:   "Sobremesa cremosa e saudável feita com abacate, cacau e mel, rica em nutrientes.",
			DescriptionEN:   "Creamy and healthy dessert made with avocado, cocoa and honey, rich in nutrients.",
			DescriptionES:   "Postre cremoso y saludable hecho con aguacate, cacao y miel, rico en nutrientes.",
			ImageURL:        "https://images.unsplash.com/photo-1541781774459-bb2af2f05b55?w=400",
			Difficulty:      2,
			PrepTimeMinutes: 15,
			CategoryID:      categories[3].ID,
		},
		{
			TitlePT:         "Energy Balls de Tâmara",
			TitleEN:         "Date Energy Balls",
			TitleES:         "Bolitas Energéticas de Dátil",
			DescriptionPT:   "Lanchinhos energéticos feitos com tâmaras, nozes e coco, perfeitos para o pré-treino.",
			DescriptionEN:   "Energy snacks made with dates, nuts and coconut, perfect for pre-workout.",
			DescriptionES:   "Aperitivos energéticos hechos con dátiles, nueces y coco, perfectos para antes del entrenamiento.",
			ImageURL:        "https://images.unsplash.com/photo-1606312619070-d48b4c652a52?w=400",
			Difficulty:      1,
			PrepTimeMinutes: 10,
			CategoryID:      categories[4].ID,
		},
	}
}
