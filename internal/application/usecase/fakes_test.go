package usecase_test

import (
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// Fakes en memoria de los puertos de persistencia. Guardan los punteros tal
// cual (sin copiar), igual que harían los repos reales tras hidratar.

type fakeCategoryRepo struct {
	categories map[string]*entity.Category
	products   *fakeProductRepo // para hidratar GetWithProducts
}

func newFakeCategoryRepo(products *fakeProductRepo) *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[string]*entity.Category), products: products}
}

func (r *fakeCategoryRepo) Create(c *entity.Category) error {
	r.categories[c.ID] = c
	return nil
}

func (r *fakeCategoryRepo) GetByID(id string) (*entity.Category, error) {
	return r.categories[id], nil
}

func (r *fakeCategoryRepo) GetWithProducts(id string) (*entity.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, nil
	}
	c.Products = make(map[string]*entity.Product)
	for _, p := range r.products.products {
		if p.CategoryID == c.ID {
			c.Products[p.ID] = p
		}
	}
	return c, nil
}

func (r *fakeCategoryRepo) GetByName(name string) (*entity.Category, error) {
	for _, c := range r.categories {
		if c.Name == name && !c.IsDeleted() {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) Update(c *entity.Category) error {
	r.categories[c.ID] = c
	return nil
}

func (r *fakeCategoryRepo) List(includeDeleted bool) ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(r.categories))
	for _, c := range r.categories {
		if !includeDeleted && c.IsDeleted() {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCategoryRepo) ListDeleted() ([]*entity.Category, error) {
	out := make([]*entity.Category, 0)
	for _, c := range r.categories {
		if c.IsDeleted() {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*entity.Product)}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.products[id], nil
}

func (r *fakeProductRepo) GetWithTags(id string) (*entity.Product, error) {
	return r.products[id], nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) List(includeDeleted bool) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		if !includeDeleted && p.IsDeleted() {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProductRepo) ListDeleted() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0)
	for _, p := range r.products {
		if p.IsDeleted() {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) ListByCategory(categoryID string) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0)
	for _, p := range r.products {
		if p.CategoryID == categoryID && !p.IsDeleted() {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) ListByActive(active bool) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0)
	for _, p := range r.products {
		if p.Active == active && !p.IsDeleted() {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) ListCandidates() ([]*entity.Product, error) {
	return r.List(false)
}

type fakeTagRepo struct {
	tags map[string]*entity.Tag
}

func newFakeTagRepo() *fakeTagRepo {
	return &fakeTagRepo{tags: make(map[string]*entity.Tag)}
}

func (r *fakeTagRepo) Create(t *entity.Tag) error {
	r.tags[t.ID] = t
	return nil
}

func (r *fakeTagRepo) GetByID(id string) (*entity.Tag, error) {
	return r.tags[id], nil
}

func (r *fakeTagRepo) Update(t *entity.Tag) error {
	r.tags[t.ID] = t
	return nil
}

func (r *fakeTagRepo) List(includeDeleted bool) ([]*entity.Tag, error) {
	out := make([]*entity.Tag, 0, len(r.tags))
	for _, t := range r.tags {
		if !includeDeleted && t.IsDeleted() {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (r *fakeTagRepo) ListDeleted() ([]*entity.Tag, error) {
	out := make([]*entity.Tag, 0)
	for _, t := range r.tags {
		if t.IsDeleted() {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeTagRepo) ListByProduct(productID string) ([]*entity.Tag, error) {
	out := make([]*entity.Tag, 0)
	for _, t := range r.tags {
		if t.ProductID == productID && !t.IsDeleted() {
			out = append(out, t)
		}
	}
	return out, nil
}

// fakeTxRunner ejecuta el closure directamente contra los fakes, sin
// transacción real.
type fakeTxRunner struct {
	categories repository.CategoryRepository
	products   repository.ProductRepository
}

func (tx *fakeTxRunner) Run(fn func(categories repository.CategoryRepository, products repository.ProductRepository) error) error {
	return fn(tx.categories, tx.products)
}

// recordingAudit acumula las acciones emitidas para poder afirmarlas.
type recordingAudit struct {
	actions []string
}

func (a *recordingAudit) Log(action, userID string, payload any) {
	a.actions = append(a.actions, action)
}
