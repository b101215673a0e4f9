package simulation

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/simulador-reforma/internal/application/dto"
	"github.com/jhoicas/simulador-reforma/internal/domain"
	"github.com/jhoicas/simulador-reforma/internal/domain/entity"
	"github.com/jhoicas/simulador-reforma/internal/domain/repository"
	"github.com/jhoicas/simulador-reforma/internal/domain/sped"
	"github.com/jhoicas/simulador-reforma/pkg/cnpj"
	"github.com/jhoicas/simulador-reforma/pkg/logger"
)

// ImportUseCase persiste un archivo EFD: cabecera 0000, un registro de contexto por
// CNPJ distinto en cada bloque y los detalles colgando de él.
type ImportUseCase struct {
	branches repository.BranchRepository
	files    repository.EfdReader
	tx       ImportTxRunner
	log      *logger.Logger
	encoding string
}

// NewImportUseCase construye el caso de uso. encoding: auto, latin1 o utf8.
func NewImportUseCase(
	branches repository.BranchRepository,
	files repository.EfdReader,
	tx ImportTxRunner,
	log *logger.Logger,
	encoding string,
) *ImportUseCase {
	return &ImportUseCase{branches: branches, files: files, tx: tx, log: log, encoding: encoding}
}

// Import lee, interpreta y persiste el archivo. Devuelve ErrInvalidInput si no hay
// ningún registro reconocido y ErrNoBranch si no se puede asociar a una filial.
func (uc *ImportUseCase) Import(ctx context.Context, scope Scope, r io.Reader) (*dto.ImportResponse, error) {
	data, stats, err := parseFile(r, uc.encoding)
	if err != nil {
		return nil, err
	}
	if stats.Recognized == 0 {
		return nil, fmt.Errorf("%w: el archivo no contiene registros EFD reconocidos", domain.ErrInvalidInput)
	}

	branch, err := uc.resolveBranch(ctx, scope, cnpj.Normalize(data.Header.CNPJ))
	if err != nil {
		return nil, err
	}

	file := &entity.EfdFile{
		ID:          uuid.New().String(),
		TenantID:    scope.TenantID,
		BranchID:    branch.ID,
		CNPJ:        cnpj.Normalize(data.Header.CNPJ),
		PeriodStart: optionalDate(data.Header.PeriodStart),
		PeriodEnd:   optionalDate(data.Header.PeriodEnd),
		CreatedAt:   time.Now(),
	}
	if file.CNPJ == "" {
		file.CNPJ = branch.CNPJ
	}

	err = uc.tx.RunImport(ctx, func(repo repository.EfdRepository) error {
		if err := repo.CreateFile(ctx, file); err != nil {
			return err
		}
		goods := groupByEntity(data.Goods, data.EnergyCredits, data.EnergyDebits)
		if err := insertBlocks(ctx, repo, file, entity.BlockGoods, goods); err != nil {
			return err
		}
		return insertBlocks(ctx, repo, file, entity.BlockFreight, groupByEntity(data.Freight))
	})
	if err != nil {
		uc.log.Error().Err(err).Str("tenant_id", scope.TenantID).Str("cnpj", file.CNPJ).Msg("importación EFD fallida")
		return nil, err
	}

	uc.log.Info().
		Str("tenant_id", scope.TenantID).
		Str("file_id", file.ID).
		Str("branch_id", branch.ID).
		Int("c100", len(data.Goods)).
		Int("c500", len(data.EnergyCredits)).
		Int("c600", len(data.EnergyDebits)).
		Int("d100", len(data.Freight)).
		Int("ignored_lines", stats.Ignored).
		Msg("archivo EFD importado")

	return &dto.ImportResponse{
		FileID:        file.ID,
		BranchID:      branch.ID,
		CNPJ:          file.CNPJ,
		PeriodStart:   file.PeriodStart,
		PeriodEnd:     file.PeriodEnd,
		Goods:         len(data.Goods),
		EnergyCredits: len(data.EnergyCredits),
		EnergyDebits:  len(data.EnergyDebits),
		Freight:       len(data.Freight),
		Lines:         stats.Lines,
		Ignored:       stats.Ignored,
	}, nil
}

// ListFiles historial de importaciones del tenant.
func (uc *ImportUseCase) ListFiles(ctx context.Context, tenantID string) ([]dto.ImportFileResponse, error) {
	files, err := uc.files.ListFiles(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ImportFileResponse, 0, len(files))
	for _, f := range files {
		out = append(out, dto.ImportFileResponse{
			ID: f.ID, BranchID: f.BranchID, CNPJ: f.CNPJ,
			PeriodStart: f.PeriodStart, PeriodEnd: f.PeriodEnd, CreatedAt: f.CreatedAt,
		})
	}
	return out, nil
}

// resolveBranch la filial del tenant con el CNPJ del 0000; si no hay, la primera
// filial de la empresa del usuario.
func (uc *ImportUseCase) resolveBranch(ctx context.Context, scope Scope, headerCNPJ string) (*entity.Branch, error) {
	if headerCNPJ != "" {
		b, err := uc.branches.GetByCNPJ(ctx, scope.TenantID, headerCNPJ)
		if err != nil {
			return nil, err
		}
		if b != nil {
			return b, nil
		}
	}
	if scope.CompanyID != "" {
		b, err := uc.branches.FirstByCompany(ctx, scope.CompanyID)
		if err != nil {
			return nil, err
		}
		if b != nil {
			return b, nil
		}
	}
	return nil, domain.ErrNoBranch
}

// entityGroup registros de un bloque que comparten CNPJ.
type entityGroup struct {
	cnpj    string
	records []entity.SpedRecord
}

// groupByEntity agrupa por CNPJ normalizado en orden de primera aparición,
// conservando el orden de los registros dentro de cada grupo.
func groupByEntity(categories ...[]entity.SpedRecord) []entityGroup {
	var groups []entityGroup
	index := map[string]int{}
	for _, records := range categories {
		for _, rec := range records {
			id := cnpj.Normalize(rec.CNPJ)
			i, ok := index[id]
			if !ok {
				i = len(groups)
				index[id] = i
				groups = append(groups, entityGroup{cnpj: id})
			}
			groups[i].records = append(groups[i].records, rec)
		}
	}
	return groups
}

func insertBlocks(ctx context.Context, repo repository.EfdRepository, file *entity.EfdFile, block string, groups []entityGroup) error {
	for i, g := range groups {
		b := &entity.EfdBlock{
			ID:       uuid.New().String(),
			TenantID: file.TenantID,
			FileID:   file.ID,
			Block:    block,
			CNPJ:     g.cnpj,
			Seq:      i,
		}
		if err := repo.CreateBlock(ctx, b); err != nil {
			return err
		}
		if err := repo.InsertRecords(ctx, b, g.records); err != nil {
			return err
		}
	}
	return nil
}

func parseFile(r io.Reader, encoding string) (entity.SpedData, sped.Stats, error) {
	decoded, err := sped.NewDecodingReader(r, encoding)
	if err != nil {
		return entity.SpedData{}, sped.Stats{}, err
	}
	return sped.ParseReader(decoded)
}

func optionalDate(s string) *time.Time {
	t, ok := sped.ParseDate(s)
	if !ok {
		return nil
	}
	return &t
}
