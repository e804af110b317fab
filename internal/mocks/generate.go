package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name StatsSource --dir ../usecase --output usecase --outpkg usecasemock --filename stats_source_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name LogoSource --dir ../usecase --output usecase --outpkg usecasemock --filename logo_source_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name NextMatchSource --dir ../usecase --output usecase --outpkg usecasemock --filename next_match_source_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name ChartRenderer --dir ../usecase --output usecase --outpkg usecasemock --filename chart_renderer_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name ReportWriter --dir ../usecase --output usecase --outpkg usecasemock --filename report_writer_mock.go
