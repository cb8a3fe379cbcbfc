// Package mocks provides mock implementations for testing the listing system.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for our repository interfaces.
// The mocks are generated using go:generate directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockRepo := mocks.NewMockJobRepository(ctrl)
//	mockRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil)
package mocks

// Generate mock for JobRepository interface from internal/core package.
// This creates MockJobRepository with methods for all JobRepository interface methods:
// Create, GetByID, ListWithConditions, UpdateStatus
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=job_repository_mock.go github.com/byeyali/airang-ssam-sub001/internal/core JobRepository

// Generate mock for RegionDirectory interface from internal/core package.
// This creates MockRegionDirectory with methods for all RegionDirectory interface methods:
// RegionsForMember
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=region_directory_mock.go github.com/byeyali/airang-ssam-sub001/internal/core RegionDirectory

// Generate mock for CategoryRepository interface from internal/core package.
// This creates MockCategoryRepository with methods for all CategoryRepository interface methods:
// LabelsForJobs
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=category_repository_mock.go github.com/byeyali/airang-ssam-sub001/internal/core CategoryRepository

// Generate mock for MemberRepository interface from internal/core package.
// This creates MockMemberRepository with methods for all MemberRepository interface methods:
// SummariesByIDs
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=member_repository_mock.go github.com/byeyali/airang-ssam-sub001/internal/core MemberRepository

// Generate mock for SessionStore interface from internal/core package.
// This creates MockSessionStore with methods for all SessionStore interface methods:
// Get
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=session_store_mock.go github.com/byeyali/airang-ssam-sub001/internal/core SessionStore
