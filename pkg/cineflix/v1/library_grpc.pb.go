// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: cineflix/v1/library.proto

package cineflixv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	UserLibraryService_AddFavoriteMovie_FullMethodName     = "/cineflix.v1.UserLibraryService/AddFavoriteMovie"
	UserLibraryService_RemoveFavoriteMovie_FullMethodName  = "/cineflix.v1.UserLibraryService/RemoveFavoriteMovie"
	UserLibraryService_ListFavoriteMovies_FullMethodName   = "/cineflix.v1.UserLibraryService/ListFavoriteMovies"
	UserLibraryService_AddWatchListMovie_FullMethodName    = "/cineflix.v1.UserLibraryService/AddWatchListMovie"
	UserLibraryService_RemoveWatchListMovie_FullMethodName = "/cineflix.v1.UserLibraryService/RemoveWatchListMovie"
	UserLibraryService_ListWatchListMovies_FullMethodName  = "/cineflix.v1.UserLibraryService/ListWatchListMovies"
)

// UserLibraryServiceClient is the client API for UserLibraryService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// UserLibraryService manages per-user favorites and watch lists.
type UserLibraryServiceClient interface {
	AddFavoriteMovie(ctx context.Context, in *LibraryEntryRequest, opts ...grpc.CallOption) (*LibraryMutationResponse, error)
	RemoveFavoriteMovie(ctx context.Context, in *LibraryEntryRequest, opts ...grpc.CallOption) (*LibraryMutationResponse, error)
	ListFavoriteMovies(ctx context.Context, in *ListLibraryRequest, opts ...grpc.CallOption) (*ListLibraryResponse, error)
	AddWatchListMovie(ctx context.Context, in *LibraryEntryRequest, opts ...grpc.CallOption) (*LibraryMutationResponse, error)
	RemoveWatchListMovie(ctx context.Context, in *LibraryEntryRequest, opts ...grpc.CallOption) (*LibraryMutationResponse, error)
	ListWatchListMovies(ctx context.Context, in *ListLibraryRequest, opts ...grpc.CallOption) (*ListLibraryResponse, error)
}

type userLibraryServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewUserLibraryServiceClient(cc grpc.ClientConnInterface) UserLibraryServiceClient {
	return &userLibraryServiceClient{cc}
}

func (c *userLibraryServiceClient) AddFavoriteMovie(ctx context.Context, in *LibraryEntryRequest, opts ...grpc.CallOption) (*LibraryMutationResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(LibraryMutationResponse)
	err := c.cc.Invoke(ctx, UserLibraryService_AddFavoriteMovie_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *userLibraryServiceClient) RemoveFavoriteMovie(ctx context.Context, in *LibraryEntryRequest, opts ...grpc.CallOption) (*LibraryMutationResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(LibraryMutationResponse)
	err := c.cc.Invoke(ctx, UserLibraryService_RemoveFavoriteMovie_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *userLibraryServiceClient) ListFavoriteMovies(ctx context.Context, in *ListLibraryRequest, opts ...grpc.CallOption) (*ListLibraryResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListLibraryResponse)
	err := c.cc.Invoke(ctx, UserLibraryService_ListFavoriteMovies_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *userLibraryServiceClient) AddWatchListMovie(ctx context.Context, in *LibraryEntryRequest, opts ...grpc.CallOption) (*LibraryMutationResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(LibraryMutationResponse)
	err := c.cc.Invoke(ctx, UserLibraryService_AddWatchListMovie_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *userLibraryServiceClient) RemoveWatchListMovie(ctx context.Context, in *LibraryEntryRequest, opts ...grpc.CallOption) (*LibraryMutationResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(LibraryMutationResponse)
	err := c.cc.Invoke(ctx, UserLibraryService_RemoveWatchListMovie_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *userLibraryServiceClient) ListWatchListMovies(ctx context.Context, in *ListLibraryRequest, opts ...grpc.CallOption) (*ListLibraryResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListLibraryResponse)
	err := c.cc.Invoke(ctx, UserLibraryService_ListWatchListMovies_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UserLibraryServiceServer is the server API for UserLibraryService service.
// All implementations must embed UnimplementedUserLibraryServiceServer
// for forward compatibility.
//
// UserLibraryService manages per-user favorites and watch lists.
type UserLibraryServiceServer interface {
	AddFavoriteMovie(context.Context, *LibraryEntryRequest) (*LibraryMutationResponse, error)
	RemoveFavoriteMovie(context.Context, *LibraryEntryRequest) (*LibraryMutationResponse, error)
	ListFavoriteMovies(context.Context, *ListLibraryRequest) (*ListLibraryResponse, error)
	AddWatchListMovie(context.Context, *LibraryEntryRequest) (*LibraryMutationResponse, error)
	RemoveWatchListMovie(context.Context, *LibraryEntryRequest) (*LibraryMutationResponse, error)
	ListWatchListMovies(context.Context, *ListLibraryRequest) (*ListLibraryResponse, error)
	mustEmbedUnimplementedUserLibraryServiceServer()
}

// UnimplementedUserLibraryServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedUserLibraryServiceServer struct{}

func (UnimplementedUserLibraryServiceServer) AddFavoriteMovie(context.Context, *LibraryEntryRequest) (*LibraryMutationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AddFavoriteMovie not implemented")
}
func (UnimplementedUserLibraryServiceServer) RemoveFavoriteMovie(context.Context, *LibraryEntryRequest) (*LibraryMutationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RemoveFavoriteMovie not implemented")
}
func (UnimplementedUserLibraryServiceServer) ListFavoriteMovies(context.Context, *ListLibraryRequest) (*ListLibraryResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListFavoriteMovies not implemented")
}
func (UnimplementedUserLibraryServiceServer) AddWatchListMovie(context.Context, *LibraryEntryRequest) (*LibraryMutationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AddWatchListMovie not implemented")
}
func (UnimplementedUserLibraryServiceServer) RemoveWatchListMovie(context.Context, *LibraryEntryRequest) (*LibraryMutationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RemoveWatchListMovie not implemented")
}
func (UnimplementedUserLibraryServiceServer) ListWatchListMovies(context.Context, *ListLibraryRequest) (*ListLibraryResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListWatchListMovies not implemented")
}
func (UnimplementedUserLibraryServiceServer) mustEmbedUnimplementedUserLibraryServiceServer() {}
func (UnimplementedUserLibraryServiceServer) testEmbeddedByValue()                            {}

// UnsafeUserLibraryServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to UserLibraryServiceServer will
// result in compilation errors.
type UnsafeUserLibraryServiceServer interface {
	mustEmbedUnimplementedUserLibraryServiceServer()
}

func RegisterUserLibraryServiceServer(s grpc.ServiceRegistrar, srv UserLibraryServiceServer) {
	// If the following call pancis, it indicates UnimplementedUserLibraryServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&UserLibraryService_ServiceDesc, srv)
}

func _UserLibraryService_AddFavoriteMovie_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(LibraryEntryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UserLibraryServiceServer).AddFavoriteMovie(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: UserLibraryService_AddFavoriteMovie_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(UserLibraryServiceServer).AddFavoriteMovie(ctx, req.(*LibraryEntryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _UserLibraryService_RemoveFavoriteMovie_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(LibraryEntryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UserLibraryServiceServer).RemoveFavoriteMovie(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: UserLibraryService_RemoveFavoriteMovie_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(UserLibraryServiceServer).RemoveFavoriteMovie(ctx, req.(*LibraryEntryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _UserLibraryService_ListFavoriteMovies_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListLibraryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UserLibraryServiceServer).ListFavoriteMovies(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: UserLibraryService_ListFavoriteMovies_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(UserLibraryServiceServer).ListFavoriteMovies(ctx, req.(*ListLibraryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _UserLibraryService_AddWatchListMovie_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(LibraryEntryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UserLibraryServiceServer).AddWatchListMovie(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: UserLibraryService_AddWatchListMovie_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(UserLibraryServiceServer).AddWatchListMovie(ctx, req.(*LibraryEntryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _UserLibraryService_RemoveWatchListMovie_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(LibraryEntryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UserLibraryServiceServer).RemoveWatchListMovie(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: UserLibraryService_RemoveWatchListMovie_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(UserLibraryServiceServer).RemoveWatchListMovie(ctx, req.(*LibraryEntryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _UserLibraryService_ListWatchListMovies_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListLibraryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UserLibraryServiceServer).ListWatchListMovies(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: UserLibraryService_ListWatchListMovies_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(UserLibraryServiceServer).ListWatchListMovies(ctx, req.(*ListLibraryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// UserLibraryService_ServiceDesc is the grpc.ServiceDesc for UserLibraryService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var UserLibraryService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "cineflix.v1.UserLibraryService",
	HandlerType: (*UserLibraryServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "AddFavoriteMovie",
			Handler:    _UserLibraryService_AddFavoriteMovie_Handler,
		},
		{
			MethodName: "RemoveFavoriteMovie",
			Handler:    _UserLibraryService_RemoveFavoriteMovie_Handler,
		},
		{
			MethodName: "ListFavoriteMovies",
			Handler:    _UserLibraryService_ListFavoriteMovies_Handler,
		},
		{
			MethodName: "AddWatchListMovie",
			Handler:    _UserLibraryService_AddWatchListMovie_Handler,
		},
		{
			MethodName: "RemoveWatchListMovie",
			Handler:    _UserLibraryService_RemoveWatchListMovie_Handler,
		},
		{
			MethodName: "ListWatchListMovies",
			Handler:    _UserLibraryService_ListWatchListMovies_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "cineflix/v1/library.proto",
}
