package ruling

import (
	"github.com/vfg2006/ads-rules-api/internal/domain"
)

// SnapshotProvider define a interface para obter snapshots de performance de
// targets para uma regra. A implementação usa timeframe_days e os filtros de
// escopo da regra para parametrizar a consulta.
//
// Configured distingue a capacidade ausente (credenciais não configuradas,
// condição permanente) de uma falha transitória de FetchSnapshots: o
// scheduler pula a regra sem marcá-la como executada em ambos os casos, mas
// só loga a primeira como aviso de configuração.
type SnapshotProvider interface {
	Configured() bool
	FetchSnapshots(rule *domain.Rule) ([]domain.TargetSnapshot, error)
}

// BidApplier define a interface para aplicar um novo bid a um target.
type BidApplier interface {
	Configured() bool
	ApplyBid(snapshot domain.TargetSnapshot, newBid float64) error
}

// BidIntegrator combina as duas capacidades do integrador de anúncios.
type BidIntegrator interface {
	SnapshotProvider
	BidApplier
}
