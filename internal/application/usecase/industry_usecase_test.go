package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/biztime-api/internal/application/dto"
	"github.com/tu-usuario/biztime-api/internal/application/usecase"
	"github.com/tu-usuario/biztime-api/internal/domain/entity"
)

func TestIndustryCreate_NormalizaCodeASlug(t *testing.T) {
	uc := usecase.NewIndustryUseCase(&fakeIndustryRepo{})

	out, err := uc.Create(context.Background(), dto.CreateIndustryRequest{
		Code: "Acct.", Industry: "Accounting",
	})
	require.NoError(t, err)

	assert.Equal(t, "acct", out.Code)
	assert.Equal(t, "Accounting", out.Industry)
}

func TestIndustryList(t *testing.T) {
	repo := &fakeIndustryRepo{}
	repo.industries = append(repo.industries, &entity.Industry{Code: "tech", Industry: "Technology"})
	uc := usecase.NewIndustryUseCase(repo)

	out, err := uc.List(context.Background())
	require.NoError(t, err)

	require.Len(t, out.Industries, 1)
	assert.Equal(t, "tech", out.Industries[0].Code)
}

// La asociación no valida existencia de los codes: un enlace colgante es
// posible si el store no impone FKs.
func TestIndustryAssociate_SinValidacionDeExistencia(t *testing.T) {
	uc := usecase.NewIndustryUseCase(&fakeIndustryRepo{})

	out, err := uc.Associate(context.Background(), "apple", "tech")
	require.NoError(t, err)

	assert.Equal(t, "apple", out.CompCode)
	assert.Equal(t, "tech", out.IndCode)
}
